// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/freight-desk/cliparse"
	"github.com/danielhkuo/freight-desk/db"
	"github.com/danielhkuo/freight-desk/ids"
)

// TestDBURL is an in-memory sqlite database, private to one connection
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema and
// seeded dictionaries. The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), cliparse.DatabaseSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.SeedDictionaries(context.Background(), conn); err != nil {
		t.Fatalf("Failed to seed dictionaries: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
		SessionTTL:   30 * time.Minute,
	}
}

// CreateTestClient inserts a client and returns its ID
func CreateTestClient(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	id, _ := ids.GenerateID(ids.RecordIDBytes)
	_, err := conn.Exec(`
		INSERT INTO client (id, name, created_at)
		VALUES ($1, $2, $3)
	`, id, name, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	return id
}

// CreateTestCarrier inserts a carrier and returns its ID
func CreateTestCarrier(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	id, _ := ids.GenerateID(ids.RecordIDBytes)
	_, err := conn.Exec(`
		INSERT INTO carrier (id, name, created_at)
		VALUES ($1, $2, $3)
	`, id, name, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test carrier: %v", err)
	}
	return id
}

// CreateTestOrder inserts a minimal order and returns its ID
func CreateTestOrder(t *testing.T, conn *sql.DB, clientID, routeFrom, routeTo, status string) string {
	t.Helper()

	id, _ := ids.GenerateID(ids.OrderIDBytes)
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO freight_order (id, client_id, route_from, route_to, client_rate, carrier_rate, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, clientID, routeFrom, routeTo, 1000.0, 800.0, status, now, now)
	if err != nil {
		t.Fatalf("Failed to create test order: %v", err)
	}
	return id
}

// FirstDictionaryID returns the ID of any entry in a dictionary table
func FirstDictionaryID(t *testing.T, conn *sql.DB, table string) string {
	t.Helper()

	var id string
	if err := conn.QueryRow("SELECT id FROM " + table + " ORDER BY name LIMIT 1").Scan(&id); err != nil {
		t.Fatalf("Failed to read %s: %v", table, err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
