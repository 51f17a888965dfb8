// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/freight-desk/cliparse"
	"github.com/danielhkuo/freight-desk/middleware"
	"github.com/danielhkuo/freight-desk/models"
	"github.com/danielhkuo/freight-desk/store"
	"github.com/danielhkuo/freight-desk/wizard"
)

// ListVersionHeader carries the order list version on GET /orders
const ListVersionHeader = "X-List-Version"

type OrderHandler struct {
	orders  *store.Orders
	cfg     cliparse.Config
	version *ListVersion
}

func NewOrderHandler(orders *store.Orders, cfg cliparse.Config, version *ListVersion) *OrderHandler {
	return &OrderHandler{orders: orders, cfg: cfg, version: version}
}

// orderError maps store errors to a status and message
func orderError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, store.ErrClientRequired), errors.Is(err, store.ErrInvalidStatus):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrUnknownClient), errors.Is(err, store.ErrUnknownCarrier):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("order store failure", "action", action, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+action+" order")
	}
}

func summarize(o models.Order) models.OrderSummary {
	m := wizard.FormatMargin(wizard.Profit(o.ClientRate, o.CarrierRate))
	return models.OrderSummary{Order: o, Margin: m.Value, MarginText: m.Text}
}

// ListOrders handles GET /orders?status=
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	orders, err := h.orders.List(r.Context(), status)
	if err != nil {
		orderError(w, err, "list")
		return
	}

	items := make([]models.OrderSummary, 0, len(orders))
	for _, o := range orders {
		items = append(items, summarize(o))
	}

	w.Header().Set(ListVersionHeader, strconv.FormatUint(h.version.Current(), 10))
	middleware.JSONResponse(w, http.StatusOK, models.ListResponse[models.OrderSummary]{Items: items})
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderPayload
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	order, err := h.orders.Create(r.Context(), req)
	if err != nil {
		orderError(w, err, "create")
		return
	}

	slog.Info("order created", "order_id", order.ID, "client_id", order.ClientID, "status", order.Status)
	h.version.Bump()

	middleware.JSONResponse(w, http.StatusCreated, summarize(order))
}

// GetOrder handles GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		orderError(w, err, "get")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, summarize(order))
}

// UpdateOrder handles PUT /orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("id")

	var req models.OrderPayload
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	order, err := h.orders.Update(r.Context(), orderID, req)
	if err != nil {
		orderError(w, err, "update")
		return
	}

	slog.Info("order updated", "order_id", orderID, "status", order.Status)
	h.version.Bump()

	middleware.JSONResponse(w, http.StatusOK, summarize(order))
}

// DeleteOrder handles DELETE /orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("id")

	if err := h.orders.Delete(r.Context(), orderID); err != nil {
		orderError(w, err, "delete")
		return
	}

	slog.Info("order deleted", "order_id", orderID)
	h.version.Bump()

	w.WriteHeader(http.StatusNoContent)
}
