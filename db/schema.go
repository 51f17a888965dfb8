// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL sticks to types both postgres and sqlite accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Tables lists every table in dependency order (children last)
var Tables = []string{
	"client",
	"carrier",
	"contact",
	"vehicle_body_type",
	"loading_type",
	"package_type",
	"freight_order",
}

// DictionaryTables maps a dictionary kind to its table
var DictionaryTables = map[string]string{
	"vehicle-body-types": "vehicle_body_type",
	"loading-types":      "loading_type",
	"package-types":      "package_type",
}

const schema = `
-- Clients
CREATE TABLE IF NOT EXISTS client (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    inn TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_client_name ON client(name);

-- Carriers
CREATE TABLE IF NOT EXISTS carrier (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    inn TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    fleet_size INTEGER NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_carrier_name ON carrier(name);

-- Contacts belong to a client or a carrier
CREATE TABLE IF NOT EXISTS contact (
    id TEXT PRIMARY KEY,
    client_id TEXT REFERENCES client(id) ON DELETE CASCADE,
    carrier_id TEXT REFERENCES carrier(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    position TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_contact_client_id ON contact(client_id);
CREATE INDEX IF NOT EXISTS idx_contact_carrier_id ON contact(carrier_id);

-- Dictionaries
CREATE TABLE IF NOT EXISTS vehicle_body_type (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS loading_type (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS package_type (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

-- Orders
CREATE TABLE IF NOT EXISTS freight_order (
    id TEXT PRIMARY KEY,
    client_id TEXT NOT NULL REFERENCES client(id),
    carrier_id TEXT REFERENCES carrier(id) ON DELETE SET NULL,
    route_from TEXT,
    route_to TEXT,
    cargo_name TEXT,
    cargo_weight DOUBLE PRECISION,
    loading_date TEXT,
    unloading_date TEXT,
    client_rate DOUBLE PRECISION,
    carrier_rate DOUBLE PRECISION,
    transport_mode TEXT,
    direction TEXT,
    vehicle_body_type_id TEXT REFERENCES vehicle_body_type(id) ON DELETE SET NULL,
    loading_type_id TEXT REFERENCES loading_type(id) ON DELETE SET NULL,
    package_type_id TEXT REFERENCES package_type(id) ON DELETE SET NULL,
    notes TEXT,
    status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'active', 'completed', 'cancelled')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_freight_order_client_id ON freight_order(client_id);
CREATE INDEX IF NOT EXISTS idx_freight_order_status ON freight_order(status);
`
