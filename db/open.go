// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database and verifies the connection.
// dbType is "sqlite" or "postgres".
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case "postgres":
		driver = "postgres"
	case "sqlite":
		driver = "sqlite"
		url = withSQLitePragmas(url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if driver == "sqlite" {
		// sqlite allows one writer; a single connection avoids SQLITE_BUSY
		conn.SetMaxOpenConns(1)
		conn.SetConnMaxLifetime(0)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// withSQLitePragmas turns on foreign keys and a busy timeout unless the
// URL already sets pragmas.
func withSQLitePragmas(url string) string {
	if strings.Contains(url, "_pragma=") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
