// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/freight-desk/models"
	"github.com/danielhkuo/freight-desk/refdata"
)

// References loads reference lists for the refdata cache
type References struct {
	db *sql.DB
}

func NewReferences(db *sql.DB) *References {
	return &References{db: db}
}

// Load reads all five lists, each ordered by name
func (r *References) Load(ctx context.Context) (refdata.Snapshot, error) {
	var snap refdata.Snapshot
	targets := []struct {
		table string
		dst   *[]models.Ref
	}{
		{"client", &snap.Clients},
		{"carrier", &snap.Carriers},
		{"vehicle_body_type", &snap.VehicleBodyTypes},
		{"loading_type", &snap.LoadingTypes},
		{"package_type", &snap.PackageTypes},
	}
	for _, tgt := range targets {
		refs, err := r.refs(ctx, tgt.table)
		if err != nil {
			return refdata.Snapshot{}, err
		}
		*tgt.dst = refs
	}
	return snap, nil
}

func (r *References) refs(ctx context.Context, table string) ([]models.Ref, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM "+table+" ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", table, err)
	}
	defer rows.Close()

	refs := []models.Ref{}
	for rows.Next() {
		var ref models.Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", table, err)
	}
	return refs, nil
}
