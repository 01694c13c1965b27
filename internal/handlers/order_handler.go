package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quickbite/order-api/internal/models"
	"github.com/quickbite/order-api/internal/repository"
	"github.com/quickbite/order-api/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error(), h.log)
			return
		}

		// Store failures surface generically; detail stays in the log.
		h.log.Error("failed to create order", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create order", h.log)
		return
	}

	writeJSON(w, http.StatusOK, order, h.log)
	h.log.Info("order created",
		"order_id", order.ID,
		"total", order.Total,
		"lines", len(order.Lines),
	)
}

// GetOrder handles GET /api/order/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "orderId")
	id, ok := parseID(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order id "+raw, h.log)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to get order", "order_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	writeJSON(w, http.StatusOK, order, h.log)
}

// ListOrders handles GET /api/order
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	writeJSON(w, http.StatusOK, orders, h.log)
}

// DeleteOrder handles DELETE /api/order/{orderId}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "orderId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order id", h.log)
		return
	}

	if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to delete order", "order_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete order", h.log)
		return
	}

	h.log.Info("order deleted", "order_id", id)
	w.WriteHeader(http.StatusNoContent)
}
