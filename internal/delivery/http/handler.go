package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/duongle/go-shop-backend/internal/entity"
	"github.com/duongle/go-shop-backend/pkg/metrics"
)

// Service contracts the handlers depend on, satisfied by the concrete
// services in internal/service.

type CatalogService interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	Products(ctx context.Context, categoryID int64) ([]entity.Product, error)
	Product(ctx context.Context, productID int64) (*entity.Product, error)
}

type CartService interface {
	Items(ctx context.Context, userID int64) ([]entity.CartItem, error)
	Add(ctx context.Context, userID, productID int64, quantity int) error
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error
	Remove(ctx context.Context, userID, cartID int64) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, userID int64) (int64, error)
	History(ctx context.Context, userID int64) ([]entity.Order, error)
	Get(ctx context.Context, userID, orderID int64) (*entity.Order, error)
}

type UserService interface {
	Register(ctx context.Context, username, email, password string) (int64, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	catalog CatalogService
	cart    CartService
	orders  OrderService
	users   UserService
}

func NewHandler(catalog CatalogService, cart CartService, orders OrderService, users UserService) *Handler {
	return &Handler{
		catalog: catalog,
		cart:    cart,
		orders:  orders,
		users:   users,
	}
}

// Router builds the full route tree, auth middleware included.
func (h *Handler) Router(verifier TokenVerifier, m *metrics.ServerMetrics) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	if m != nil {
		r.Use(Metrics(m))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/categories", h.handleGetCategories)
		r.Get("/products", h.handleGetProducts)
		r.Get("/products/{productId}", h.handleGetProduct)
		r.Post("/users/register", h.handleRegister)
		r.Post("/users/login", h.handleLogin)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(Authenticate(verifier))
			r.Get("/cart", h.handleViewCart)
			r.Post("/cart/add", h.handleAddToCart)
			r.Patch("/cart/update", h.handleUpdateCart)
			r.Delete("/cart/remove/{cartId}", h.handleRemoveFromCart)
			r.Post("/orders/place", h.handlePlaceOrder)
			r.Get("/orders/history", h.handleOrderHistory)
			r.Get("/orders/{orderId}", h.handleGetOrder)
		})
	})

	return r
}
