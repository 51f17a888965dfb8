// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Freight Desk API server.

Freight Desk is a back office for a freight forwarder: clients, carriers
and their contacts, lookup dictionaries, and transport orders entered
through a five-section wizard (client, route, cargo, transport, finance)
with a live margin.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

PostgreSQL with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Settings come from flags, then the environment, then an optional .env file:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string, required for postgres
  - WIZARD_SESSION_TTL (--session-ttl): Idle wizard lifetime (default: 30m)
  - ENV_FILE (--env): Dotenv file to load (default: .env when present)

# Architecture

  - handlers: HTTP request handlers (references, dictionaries, orders, wizard)
  - router: Route definitions and shared services
  - middleware: CORS, logging, JSON helpers
  - wizard: Order wizard state, validation and submission
  - refdata: Reference data cache with suggestions
  - store: Order and reference persistence
  - models: Request/response types
  - ids: Identifier generation
  - db: Schema creation and dictionary seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
