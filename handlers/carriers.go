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

type CarrierHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	refs Refresher
}

func NewCarrierHandler(db *sql.DB, cfg cliparse.Config, refs Refresher) *CarrierHandler {
	return &CarrierHandler{db: db, cfg: cfg, refs: refs}
}

func validateCarrier(req *models.CarrierRequest) string {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return "name is required"
	}
	if req.FleetSize < 0 {
		return "fleet_size cannot be negative"
	}
	return ""
}

// ListCarriers handles GET /carriers
func (h *CarrierHandler) ListCarriers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, inn, phone, email, fleet_size, notes, created_at
		FROM carrier
		ORDER BY name, id
	`)
	if err != nil {
		slog.Error("failed to query carriers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	carriers := []models.Carrier{}
	for rows.Next() {
		var c models.Carrier
		if err := rows.Scan(&c.ID, &c.Name, &c.INN, &c.Phone, &c.Email, &c.FleetSize, &c.Notes, &c.CreatedAt); err != nil {
			slog.Error("failed to scan carrier", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		carriers = append(carriers, c)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read carriers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse[models.Carrier]{Items: carriers})
}

// CreateCarrier handles POST /carriers
func (h *CarrierHandler) CreateCarrier(w http.ResponseWriter, r *http.Request) {
	var req models.CarrierRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateCarrier(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	carrierID, err := ids.GenerateID(ids.RecordIDBytes)
	if err != nil {
		slog.Error("failed to generate carrier ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create carrier")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO carrier (id, name, inn, phone, email, fleet_size, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, carrierID, req.Name, req.INN, req.Phone, req.Email, req.FleetSize, req.Notes, time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert carrier", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create carrier")
		return
	}

	slog.Info("carrier created", "carrier_id", carrierID, "name", req.Name)
	h.refs.Refresh(r.Context())

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: carrierID})
}

// GetCarrier handles GET /carriers/{id}
func (h *CarrierHandler) GetCarrier(w http.ResponseWriter, r *http.Request) {
	carrierID := r.PathValue("id")

	var c models.Carrier
	err := h.db.QueryRow(`
		SELECT id, name, inn, phone, email, fleet_size, notes, created_at
		FROM carrier WHERE id = $1
	`, carrierID).Scan(&c.ID, &c.Name, &c.INN, &c.Phone, &c.Email, &c.FleetSize, &c.Notes, &c.CreatedAt)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Carrier not found")
		return
	}
	if err != nil {
		slog.Error("failed to query carrier", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c)
}

// UpdateCarrier handles PUT /carriers/{id}
func (h *CarrierHandler) UpdateCarrier(w http.ResponseWriter, r *http.Request) {
	carrierID := r.PathValue("id")

	var req models.CarrierRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateCarrier(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	res, err := h.db.Exec(`
		UPDATE carrier SET name = $1, inn = $2, phone = $3, email = $4, fleet_size = $5, notes = $6
		WHERE id = $7
	`, req.Name, req.INN, req.Phone, req.Email, req.FleetSize, req.Notes, carrierID)
	if err != nil {
		slog.Error("failed to update carrier", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update carrier")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Carrier not found")
		return
	}

	slog.Info("carrier updated", "carrier_id", carrierID)
	h.refs.Refresh(r.Context())

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteCarrier handles DELETE /carriers/{id}.
// Orders that referenced the carrier keep going with no carrier.
func (h *CarrierHandler) DeleteCarrier(w http.ResponseWriter, r *http.Request) {
	carrierID := r.PathValue("id")

	res, err := h.db.Exec("DELETE FROM carrier WHERE id = $1", carrierID)
	if err != nil {
		slog.Error("failed to delete carrier", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete carrier")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Carrier not found")
		return
	}

	slog.Info("carrier deleted", "carrier_id", carrierID)
	h.refs.Refresh(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
