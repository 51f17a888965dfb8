// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/freight-desk/cliparse"
	"github.com/danielhkuo/freight-desk/ids"
	"github.com/danielhkuo/freight-desk/middleware"
	"github.com/danielhkuo/freight-desk/models"
)

type ContactHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewContactHandler(db *sql.DB, cfg cliparse.Config) *ContactHandler {
	return &ContactHandler{db: db, cfg: cfg}
}

// ListContacts handles GET /contacts?client_id=&carrier_id=
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	query := "SELECT id, client_id, carrier_id, name, position, phone, email, created_at FROM contact"
	var args []any
	switch {
	case r.URL.Query().Get("client_id") != "":
		query += " WHERE client_id = $1"
		args = append(args, r.URL.Query().Get("client_id"))
	case r.URL.Query().Get("carrier_id") != "":
		query += " WHERE carrier_id = $1"
		args = append(args, r.URL.Query().Get("carrier_id"))
	}
	query += " ORDER BY name, id"

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to query contacts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var c models.Contact
		var clientID, carrierID sql.NullString
		if err := rows.Scan(&c.ID, &clientID, &carrierID, &c.Name, &c.Position, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
			slog.Error("failed to scan contact", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if clientID.Valid {
			c.ClientID = &clientID.String
		}
		if carrierID.Valid {
			c.CarrierID = &carrierID.String
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read contacts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse[models.Contact]{Items: contacts})
}

// CreateContact handles POST /contacts.
// A contact belongs to exactly one client or carrier.
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if (req.ClientID == nil) == (req.CarrierID == nil) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "exactly one of client_id or carrier_id is required")
		return
	}

	table, ownerID := "client", req.ClientID
	if req.CarrierID != nil {
		table, ownerID = "carrier", req.CarrierID
	}
	var one int
	err := h.db.QueryRow("SELECT 1 FROM "+table+" WHERE id = $1", *ownerID).Scan(&one)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, strings.ToUpper(table[:1])+table[1:]+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to query contact owner", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	contactID, err := ids.GenerateID(ids.RecordIDBytes)
	if err != nil {
		slog.Error("failed to generate contact ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO contact (id, client_id, carrier_id, name, position, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, contactID, req.ClientID, req.CarrierID, req.Name, req.Position, req.Phone, req.Email, time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert contact", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	slog.Info("contact created", "contact_id", contactID, "owner", table, "owner_id", *ownerID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: contactID})
}

// DeleteContact handles DELETE /contacts/{id}
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	contactID := r.PathValue("id")

	res, err := h.db.Exec("DELETE FROM contact WHERE id = $1", contactID)
	if err != nil {
		slog.Error("failed to delete contact", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete contact")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Contact not found")
		return
	}

	slog.Info("contact deleted", "contact_id", contactID)
	w.WriteHeader(http.StatusNoContent)
}
