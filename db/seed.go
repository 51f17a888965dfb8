// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Default dictionary contents, keyed by table
var defaultDictionaries = map[string][]string{
	"vehicle_body_type": {"Tent", "Refrigerator", "Isothermal", "Box van", "Flatbed", "Container carrier"},
	"loading_type":      {"Rear", "Side", "Top", "Full uncovering"},
	"package_type":      {"Pallets", "Boxes", "Bags", "Barrels", "Bulk", "No packaging"},
}

// SeedDictionaries fills empty dictionary tables with defaults.
// It is idempotent and safe to run on every startup: tables that already
// hold entries are left alone, and seeded IDs are stable across databases.
func SeedDictionaries(ctx context.Context, db *sql.DB) error {
	for table, names := range defaultDictionaries {
		var count int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return fmt.Errorf("failed to count %s: %w", table, err)
		}
		if count > 0 {
			continue
		}

		for _, name := range names {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(table+":"+name)).String()
			_, err := db.ExecContext(ctx, "INSERT INTO "+table+" (id, name) VALUES ($1, $2)", id, name)
			if err != nil {
				return fmt.Errorf("failed to seed %s: %w", table, err)
			}
		}
	}
	return nil
}
