// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (default file:freightdesk.db for sqlite)
  - DatabaseType: sqlite (default) or postgres
  - EnvFile: Dotenv file loaded before env lookup
  - SessionTTL: Idle wizard session lifetime (default: 30m)

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-env           Dotenv file
	-session-ttl   Idle wizard session lifetime

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	ENV_FILE           → -env
	WIZARD_SESSION_TTL → -session-ttl

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded when present; values already set in the process
environment are not overwritten by it.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is neither sqlite nor postgres
  - postgres is selected without a DATABASE_URL
  - PORT or WIZARD_SESSION_TTL cannot be parsed
  - an explicitly named env file cannot be read
*/
package cliparse
