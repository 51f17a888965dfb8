// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/freight-desk/cliparse"
	"github.com/danielhkuo/freight-desk/refdata"
	"github.com/danielhkuo/freight-desk/store"
	"github.com/danielhkuo/freight-desk/testutil"
	"github.com/danielhkuo/freight-desk/wizard"
)

// testEnv wires every handler against one in-memory database
type testEnv struct {
	db      *sql.DB
	cfg     cliparse.Config
	cache   *refdata.Cache
	refs    *RefDataHandler
	orders  *store.Orders
	version *ListVersion
	manager *wizard.Manager

	clients  *ClientHandler
	carriers *CarrierHandler
	contacts *ContactHandler
	dicts    *DictionaryHandler
	orderH   *OrderHandler
	wiz      *WizardHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cache := refdata.New()
	refs := NewRefDataHandler(cache, store.NewReferences(conn))
	refs.Refresh(context.Background())

	orders := store.NewOrders(conn)
	version := &ListVersion{}
	manager := wizard.NewManager(wizard.Config{
		Store:   orders,
		Refs:    cache,
		Refresh: version.Bump,
		TTL:     cfg.SessionTTL,
	})

	return &testEnv{
		db:       conn,
		cfg:      cfg,
		cache:    cache,
		refs:     refs,
		orders:   orders,
		version:  version,
		manager:  manager,
		clients:  NewClientHandler(conn, cfg, refs),
		carriers: NewCarrierHandler(conn, cfg, refs),
		contacts: NewContactHandler(conn, cfg),
		dicts:    NewDictionaryHandler(conn, cfg, refs),
		orderH:   NewOrderHandler(orders, cfg, version),
		wiz:      NewWizardHandler(manager, orders, cfg),
	}
}

// call runs a handler with optional path values given as name/value pairs
func call(h http.HandlerFunc, req *http.Request, pathValues ...string) *httptest.ResponseRecorder {
	for i := 0; i+1 < len(pathValues); i += 2 {
		req.SetPathValue(pathValues[i], pathValues[i+1])
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}
