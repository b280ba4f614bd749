package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/duongle/go-shop-backend/internal/service"
)

func (h *Handler) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		slog.Error("Failed to get categories", "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *Handler) handleGetProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(r.URL.Query().Get("categoryId"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid categoryId")
		return
	}

	products, err := h.catalog.Products(r.Context(), categoryID)
	if err != nil {
		slog.Error("Failed to get products", "category_id", categoryID, "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid productId")
		return
	}

	product, err := h.catalog.Product(r.Context(), productID)
	if errors.Is(err, service.ErrNotFound) {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		slog.Error("Failed to get product", "product_id", productID, "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, product)
}
