package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/duongle/go-shop-backend/internal/service"
)

func (h *Handler) handleViewCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	items, err := h.cart.Items(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to get cart", "user_id", userID, "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (h *Handler) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == 0 {
		respondError(w, http.StatusBadRequest, "invalid input data")
		return
	}

	err := h.cart.Add(r.Context(), userID, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, "product not found")
	case err != nil:
		slog.Error("Failed to add to cart", "user_id", userID, "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	default:
		respondJSON(w, http.StatusCreated, map[string]string{"message": "product added to cart successfully"})
	}
}

type updateCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (h *Handler) handleUpdateCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == 0 {
		respondError(w, http.StatusBadRequest, "invalid input data")
		return
	}

	err := h.cart.UpdateQuantity(r.Context(), userID, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, "cart item not found")
	case err != nil:
		slog.Error("Failed to update cart", "user_id", userID, "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	default:
		respondJSON(w, http.StatusOK, map[string]string{"message": "cart item updated successfully"})
	}
}

func (h *Handler) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	cartID, err := strconv.ParseInt(chi.URLParam(r, "cartId"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid input data")
		return
	}

	err = h.cart.Remove(r.Context(), userID, cartID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, "cart item not found")
	case err != nil:
		slog.Error("Failed to remove from cart", "user_id", userID, "cart_id", cartID, "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	default:
		respondJSON(w, http.StatusOK, map[string]string{"message": "product removed from cart successfully"})
	}
}
