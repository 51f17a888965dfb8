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

type ClientHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	refs Refresher
}

func NewClientHandler(db *sql.DB, cfg cliparse.Config, refs Refresher) *ClientHandler {
	return &ClientHandler{db: db, cfg: cfg, refs: refs}
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, inn, phone, email, address, notes, created_at
		FROM client
		ORDER BY name, id
	`)
	if err != nil {
		slog.Error("failed to query clients", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.INN, &c.Phone, &c.Email, &c.Address, &c.Notes, &c.CreatedAt); err != nil {
			slog.Error("failed to scan client", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read clients", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse[models.Client]{Items: clients})
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req models.ClientRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	clientID, err := ids.GenerateID(ids.RecordIDBytes)
	if err != nil {
		slog.Error("failed to generate client ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create client")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO client (id, name, inn, phone, email, address, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, clientID, req.Name, req.INN, req.Phone, req.Email, req.Address, req.Notes, time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert client", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create client")
		return
	}

	slog.Info("client created", "client_id", clientID, "name", req.Name)
	h.refs.Refresh(r.Context())

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: clientID})
}

// GetClient handles GET /clients/{id}
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("id")

	var c models.Client
	err := h.db.QueryRow(`
		SELECT id, name, inn, phone, email, address, notes, created_at
		FROM client WHERE id = $1
	`, clientID).Scan(&c.ID, &c.Name, &c.INN, &c.Phone, &c.Email, &c.Address, &c.Notes, &c.CreatedAt)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Client not found")
		return
	}
	if err != nil {
		slog.Error("failed to query client", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c)
}

// UpdateClient handles PUT /clients/{id}
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("id")

	var req models.ClientRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	res, err := h.db.Exec(`
		UPDATE client SET name = $1, inn = $2, phone = $3, email = $4, address = $5, notes = $6
		WHERE id = $7
	`, req.Name, req.INN, req.Phone, req.Email, req.Address, req.Notes, clientID)
	if err != nil {
		slog.Error("failed to update client", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update client")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Client not found")
		return
	}

	slog.Info("client updated", "client_id", clientID)
	h.refs.Refresh(r.Context())

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteClient handles DELETE /clients/{id}.
// Clients referenced by orders cannot be deleted.
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	clientID := r.PathValue("id")

	var orders int
	if err := h.db.QueryRow("SELECT COUNT(*) FROM freight_order WHERE client_id = $1", clientID).Scan(&orders); err != nil {
		slog.Error("failed to count client orders", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if orders > 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "Client has orders")
		return
	}

	res, err := h.db.Exec("DELETE FROM client WHERE id = $1", clientID)
	if err != nil {
		slog.Error("failed to delete client", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Client not found")
		return
	}

	slog.Info("client deleted", "client_id", clientID)
	h.refs.Refresh(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
