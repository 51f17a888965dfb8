// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation, and dictionary seeding.

# Connections

Open selects the driver from the database type and pings the server:

	conn, err := db.Open(ctx, "sqlite", "file:freightdesk.db")
	conn, err := db.Open(ctx, "postgres", "postgres://...")

sqlite uses modernc.org/sqlite (pure Go), with foreign keys on and a single
open connection. postgres uses lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - client, carrier: counterparties
  - contact: people at a client or a carrier
  - vehicle_body_type, loading_type, package_type: dictionaries
  - freight_order: orders, including drafts

# Relationships

	client 1──* contact
	carrier 1──* contact
	client 1──* freight_order
	carrier 1──* freight_order
	dictionary 1──* freight_order

# Seeding

SeedDictionaries inserts default entries into empty dictionary tables.
Seeded IDs are name-based UUIDs, so every database gets the same IDs.
*/
package db
