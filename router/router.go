// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/danielhkuo/freight-desk/cliparse"
	"github.com/danielhkuo/freight-desk/handlers"
	"github.com/danielhkuo/freight-desk/middleware"
	"github.com/danielhkuo/freight-desk/refdata"
	"github.com/danielhkuo/freight-desk/store"
	"github.com/danielhkuo/freight-desk/wizard"
)

// Services are the long-lived collaborators shared by the handlers
type Services struct {
	Cache   *refdata.Cache
	Refs    *handlers.RefDataHandler
	Orders  *store.Orders
	Version *handlers.ListVersion
	Wizards *wizard.Manager
}

// NewServices builds the services for db and warms the reference cache
func NewServices(ctx context.Context, db *sql.DB, cfg cliparse.Config) Services {
	cache := refdata.New()
	refs := handlers.NewRefDataHandler(cache, store.NewReferences(db))
	refs.Refresh(ctx)

	orders := store.NewOrders(db)
	version := &handlers.ListVersion{}

	return Services{
		Cache:   cache,
		Refs:    refs,
		Orders:  orders,
		Version: version,
		Wizards: wizard.NewManager(wizard.Config{
			Store:   orders,
			Refs:    cache,
			Refresh: version.Bump,
			TTL:     cfg.SessionTTL,
		}),
	}
}

func NewRouter(db *sql.DB, cfg cliparse.Config, svc Services) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	clientHandler := handlers.NewClientHandler(db, cfg, svc.Refs)
	carrierHandler := handlers.NewCarrierHandler(db, cfg, svc.Refs)
	contactHandler := handlers.NewContactHandler(db, cfg)
	dictionaryHandler := handlers.NewDictionaryHandler(db, cfg, svc.Refs)
	orderHandler := handlers.NewOrderHandler(svc.Orders, cfg, svc.Version)
	wizardHandler := handlers.NewWizardHandler(svc.Wizards, svc.Orders, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Clients
	mux.HandleFunc("GET /clients", middleware.WithLogging(clientHandler.ListClients))
	mux.HandleFunc("POST /clients", middleware.WithLogging(clientHandler.CreateClient))
	mux.HandleFunc("GET /clients/{id}", middleware.WithLogging(clientHandler.GetClient))
	mux.HandleFunc("PUT /clients/{id}", middleware.WithLogging(clientHandler.UpdateClient))
	mux.HandleFunc("DELETE /clients/{id}", middleware.WithLogging(clientHandler.DeleteClient))

	// Carriers
	mux.HandleFunc("GET /carriers", middleware.WithLogging(carrierHandler.ListCarriers))
	mux.HandleFunc("POST /carriers", middleware.WithLogging(carrierHandler.CreateCarrier))
	mux.HandleFunc("GET /carriers/{id}", middleware.WithLogging(carrierHandler.GetCarrier))
	mux.HandleFunc("PUT /carriers/{id}", middleware.WithLogging(carrierHandler.UpdateCarrier))
	mux.HandleFunc("DELETE /carriers/{id}", middleware.WithLogging(carrierHandler.DeleteCarrier))

	// Contacts
	mux.HandleFunc("GET /contacts", middleware.WithLogging(contactHandler.ListContacts))
	mux.HandleFunc("POST /contacts", middleware.WithLogging(contactHandler.CreateContact))
	mux.HandleFunc("DELETE /contacts/{id}", middleware.WithLogging(contactHandler.DeleteContact))

	// Dictionaries and suggestions
	mux.HandleFunc("GET /dictionaries/{kind}", middleware.WithLogging(dictionaryHandler.ListEntries))
	mux.HandleFunc("POST /dictionaries/{kind}", middleware.WithLogging(dictionaryHandler.CreateEntry))
	mux.HandleFunc("DELETE /dictionaries/{kind}/{id}", middleware.WithLogging(dictionaryHandler.DeleteEntry))
	mux.HandleFunc("GET /refdata/{kind}/suggest", middleware.WithLogging(svc.Refs.Suggest))

	// Orders
	mux.HandleFunc("GET /orders", middleware.WithLogging(orderHandler.ListOrders))
	mux.HandleFunc("POST /orders", middleware.WithLogging(orderHandler.CreateOrder))
	mux.HandleFunc("GET /orders/{id}", middleware.WithLogging(orderHandler.GetOrder))
	mux.HandleFunc("PUT /orders/{id}", middleware.WithLogging(orderHandler.UpdateOrder))
	mux.HandleFunc("DELETE /orders/{id}", middleware.WithLogging(orderHandler.DeleteOrder))

	// Order wizard
	mux.HandleFunc("POST /wizard", middleware.WithLogging(wizardHandler.Open))
	mux.HandleFunc("GET /wizard/{id}", middleware.WithLogging(wizardHandler.View))
	mux.HandleFunc("DELETE /wizard/{id}", middleware.WithLogging(wizardHandler.Close))
	mux.HandleFunc("POST /wizard/{id}/fields", middleware.WithLogging(wizardHandler.Fields))
	mux.HandleFunc("POST /wizard/{id}/goto", middleware.WithLogging(wizardHandler.GoTo))
	mux.HandleFunc("POST /wizard/{id}/next", middleware.WithLogging(wizardHandler.Next))
	mux.HandleFunc("POST /wizard/{id}/back", middleware.WithLogging(wizardHandler.Back))
	mux.HandleFunc("POST /wizard/{id}/submit", middleware.WithLogging(wizardHandler.Submit))
	mux.HandleFunc("POST /wizard/{id}/draft", middleware.WithLogging(wizardHandler.SaveDraft))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("freight-desk API v1"))
	})

	return mux
}
