// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/freight-desk/cliparse"
	"github.com/danielhkuo/freight-desk/ids"
	"github.com/danielhkuo/freight-desk/middleware"
	"github.com/danielhkuo/freight-desk/models"
	"github.com/danielhkuo/freight-desk/store"
	"github.com/danielhkuo/freight-desk/wizard"
)

// WizardResponse is returned by every wizard endpoint that has a session
type WizardResponse struct {
	View    wizard.View     `json:"view"`
	Notices []models.Notice `json:"notices"`
	Closed  bool            `json:"closed"`
	Order   *models.Order   `json:"order,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type WizardHandler struct {
	manager *wizard.Manager
	orders  *store.Orders
	cfg     cliparse.Config
}

func NewWizardHandler(manager *wizard.Manager, orders *store.Orders, cfg cliparse.Config) *WizardHandler {
	return &WizardHandler{manager: manager, orders: orders, cfg: cfg}
}

// session resolves the {id} path value. It writes the error response itself.
func (h *WizardHandler) session(w http.ResponseWriter, r *http.Request) (*wizard.Session, bool) {
	id, err := ids.ParseSessionID(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Wizard session not found")
		return nil, false
	}
	s, err := h.manager.Get(id)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Wizard session not found")
		return nil, false
	}
	return s, true
}

func (h *WizardHandler) respond(w http.ResponseWriter, s *wizard.Session, status int, order *models.Order, err error) {
	resp := WizardResponse{
		View:    s.View(),
		Notices: s.Notices(),
		Closed:  s.Closed(),
		Order:   order,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	middleware.JSONResponse(w, status, resp)
}

// statusFor maps a session error to an HTTP status
func statusFor(err error) int {
	var storeErr *wizard.StoreError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, wizard.ErrSessionClosed):
		return http.StatusGone
	case errors.Is(err, wizard.ErrSessionUnknown):
		return http.StatusNotFound
	case errors.Is(err, wizard.ErrSubmitInFlight):
		return http.StatusConflict
	case errors.Is(err, wizard.ErrUnknownField), errors.Is(err, wizard.ErrUnknownSection):
		return http.StatusBadRequest
	case wizard.IsGuardError(err):
		return http.StatusUnprocessableEntity
	case errors.As(err, &storeErr):
		if errors.Is(err, store.ErrUnknownClient) || errors.Is(err, store.ErrUnknownCarrier) ||
			errors.Is(err, store.ErrClientRequired) || errors.Is(err, store.ErrNotFound) {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Open handles POST /wizard. An order_id opens the wizard in edit mode.
func (h *WizardHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req models.OpenWizardRequest
	if err := middleware.ParseOptionalJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var opts wizard.OpenOptions
	if req.OrderID != "" {
		order, err := h.orders.Get(r.Context(), req.OrderID)
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Order not found")
			return
		}
		if err != nil {
			slog.Error("failed to load order for wizard", "order_id", req.OrderID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		opts.Order = &order
	}

	s := h.manager.Open(opts)
	h.respond(w, s, http.StatusCreated, nil, nil)
}

// View handles GET /wizard/{id}
func (h *WizardHandler) View(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	h.respond(w, s, http.StatusOK, nil, nil)
}

func (h *WizardHandler) fields(w http.ResponseWriter, r *http.Request) (wizard.Values, bool) {
	var req models.WizardFieldsRequest
	if err := middleware.ParseOptionalJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	return wizard.Values(req.Fields), true
}

// Fields handles POST /wizard/{id}/fields
func (h *WizardHandler) Fields(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	values, ok := h.fields(w, r)
	if !ok {
		return
	}
	err := s.Collect(values)
	h.respond(w, s, statusFor(err), nil, err)
}

// GoTo handles POST /wizard/{id}/goto
func (h *WizardHandler) GoTo(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req models.WizardGotoRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	err := s.GoTo(wizard.Section(req.Section), wizard.Values(req.Fields))
	h.respond(w, s, statusFor(err), nil, err)
}

// Next handles POST /wizard/{id}/next
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	values, ok := h.fields(w, r)
	if !ok {
		return
	}
	err := s.Next(values)
	h.respond(w, s, statusFor(err), nil, err)
}

// Back handles POST /wizard/{id}/back
func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	values, ok := h.fields(w, r)
	if !ok {
		return
	}
	err := s.Back(values)
	h.respond(w, s, statusFor(err), nil, err)
}

// Submit handles POST /wizard/{id}/submit
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	values, ok := h.fields(w, r)
	if !ok {
		return
	}

	order, err := s.CreateOrder(r.Context(), values)
	if err != nil {
		h.respond(w, s, statusFor(err), nil, err)
		return
	}
	h.respond(w, s, http.StatusCreated, &order, nil)
}

// SaveDraft handles POST /wizard/{id}/draft
func (h *WizardHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	values, ok := h.fields(w, r)
	if !ok {
		return
	}

	order, err := s.SaveDraft(r.Context(), values)
	if err != nil {
		h.respond(w, s, statusFor(err), nil, err)
		return
	}
	h.respond(w, s, http.StatusOK, &order, nil)
}

// Close handles DELETE /wizard/{id}
func (h *WizardHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := ids.ParseSessionID(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Wizard session not found")
		return
	}
	if err := h.manager.Close(id); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Wizard session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
