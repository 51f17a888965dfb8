// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/danielhkuo/freight-desk/middleware"
	"github.com/danielhkuo/freight-desk/models"
	"github.com/danielhkuo/freight-desk/refdata"
)

// Refresher reloads cached reference data after a write
type Refresher interface {
	Refresh(ctx context.Context)
}

// ListVersion counts order list changes. Clients compare it with the
// X-List-Version header to know when to refetch.
type ListVersion struct {
	n atomic.Uint64
}

// Bump marks the order list as changed
func (v *ListVersion) Bump() { v.n.Add(1) }

func (v *ListVersion) Current() uint64 { return v.n.Load() }

type RefDataHandler struct {
	cache  *refdata.Cache
	loader refdata.Loader
}

func NewRefDataHandler(cache *refdata.Cache, loader refdata.Loader) *RefDataHandler {
	return &RefDataHandler{cache: cache, loader: loader}
}

// Refresh reloads the cache. Failures are logged; the previous lists stay.
func (h *RefDataHandler) Refresh(ctx context.Context) {
	if err := h.cache.Refresh(ctx, h.loader); err != nil {
		slog.Error("failed to refresh reference data", "error", err)
	}
}

// Suggest handles GET /refdata/{kind}/suggest?q=&limit=
func (h *RefDataHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	query := r.URL.Query().Get("q")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	refs, err := h.cache.Suggest(kind, query, limit)
	if errors.Is(err, refdata.ErrUnknownKind) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown reference kind")
		return
	}
	if err != nil {
		slog.Error("failed to suggest references", "kind", kind, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Suggestion failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse[models.Ref]{Items: refs})
}
