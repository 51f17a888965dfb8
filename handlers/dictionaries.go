// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/freight-desk/cliparse"
	"github.com/danielhkuo/freight-desk/db"
	"github.com/danielhkuo/freight-desk/ids"
	"github.com/danielhkuo/freight-desk/middleware"
	"github.com/danielhkuo/freight-desk/models"
)

// DictionaryHandler serves the three lookup dictionaries
// (vehicle body types, loading types, package types)
type DictionaryHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	refs Refresher
}

func NewDictionaryHandler(db *sql.DB, cfg cliparse.Config, refs Refresher) *DictionaryHandler {
	return &DictionaryHandler{db: db, cfg: cfg, refs: refs}
}

func (h *DictionaryHandler) table(w http.ResponseWriter, r *http.Request) (string, bool) {
	table, ok := db.DictionaryTables[r.PathValue("kind")]
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown dictionary")
		return "", false
	}
	return table, true
}

// ListEntries handles GET /dictionaries/{kind}
func (h *DictionaryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	table, ok := h.table(w, r)
	if !ok {
		return
	}

	rows, err := h.db.Query("SELECT id, name FROM " + table + " ORDER BY name, id")
	if err != nil {
		slog.Error("failed to query dictionary", "table", table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.Ref{}
	for rows.Next() {
		var e models.Ref
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			slog.Error("failed to scan dictionary entry", "table", table, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read dictionary", "table", table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse[models.Ref]{Items: entries})
}

// CreateEntry handles POST /dictionaries/{kind}
func (h *DictionaryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	table, ok := h.table(w, r)
	if !ok {
		return
	}

	var req models.DictionaryEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE LOWER(name) = LOWER($1)", req.Name).Scan(&count)
	if err != nil {
		slog.Error("failed to check dictionary entry", "table", table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "Entry already exists")
		return
	}

	entryID, err := ids.GenerateID(ids.RecordIDBytes)
	if err != nil {
		slog.Error("failed to generate entry ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	if _, err := h.db.Exec("INSERT INTO "+table+" (id, name) VALUES ($1, $2)", entryID, req.Name); err != nil {
		slog.Error("failed to insert dictionary entry", "table", table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	slog.Info("dictionary entry created", "table", table, "entry_id", entryID, "name", req.Name)
	h.refs.Refresh(r.Context())

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: entryID})
}

// DeleteEntry handles DELETE /dictionaries/{kind}/{id}.
// Orders using the entry have the reference cleared.
func (h *DictionaryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	table, ok := h.table(w, r)
	if !ok {
		return
	}
	entryID := r.PathValue("id")

	res, err := h.db.Exec("DELETE FROM "+table+" WHERE id = $1", entryID)
	if err != nil {
		slog.Error("failed to delete dictionary entry", "table", table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete entry")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Entry not found")
		return
	}

	slog.Info("dictionary entry deleted", "table", table, "entry_id", entryID)
	h.refs.Refresh(r.Context())

	w.WriteHeader(http.StatusNoContent)
}
