package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/duongle/go-shop-backend/internal/service"
)

func (h *Handler) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	orderID, err := h.orders.PlaceOrder(r.Context(), userID)
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "cart is empty, add items before placing an order")
	case err != nil:
		// The cause stays in the logs; the caller gets an opaque failure.
		slog.Error("Failed to place order", "user_id", userID, "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	default:
		respondJSON(w, http.StatusCreated, map[string]int64{"order_id": orderID})
	}
}

func (h *Handler) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	orders, err := h.orders.History(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to get order history", "user_id", userID, "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid orderId")
		return
	}

	order, err := h.orders.Get(r.Context(), userID, orderID)
	if errors.Is(err, service.ErrNotFound) {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		slog.Error("Failed to get order", "user_id", userID, "order_id", orderID, "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"order":       order,
		"order_items": order.Items,
	})
}
