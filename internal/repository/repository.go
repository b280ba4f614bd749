package repository

import (
	"context"
	"errors"

	"github.com/duongle/go-shop-backend/internal/entity"
)

// ErrNotFound is returned when a requested row does not exist (or is not
// visible to the requesting user).
var ErrNotFound = errors.New("not found")

// CatalogRepository handles read access to categories and products.
type CatalogRepository interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	ProductsByCategory(ctx context.Context, categoryID int64) ([]entity.Product, error)
	ProductByID(ctx context.Context, productID int64) (*entity.Product, error)
	// Seed inserts the initial catalog if it is empty.
	Seed(ctx context.Context, categories []entity.Category, products []entity.Product) error
}

// CartRepository handles row-level CRUD on a user's cart.
type CartRepository interface {
	Items(ctx context.Context, userID int64) ([]entity.CartItem, error)
	// Upsert inserts the (user, product) row or replaces its quantity.
	Upsert(ctx context.Context, userID, productID int64, quantity int) error
	// UpdateQuantity changes one existing row; ErrNotFound if the user has
	// no cart entry for the product.
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error
	// Remove deletes one cart row by its id; ErrNotFound if no such row
	// belongs to the user.
	Remove(ctx context.Context, userID, cartID int64) error
}

// UserRepository handles account persistence.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (int64, error)
	ByEmail(ctx context.Context, email string) (*entity.User, error)
}

// OrderRepository handles order persistence and the transactional scope
// used by the placement workflow.
type OrderRepository interface {
	Begin(ctx context.Context) (OrderTx, error)
	FindByUser(ctx context.Context, userID int64) ([]entity.Order, error)
	FindByID(ctx context.Context, userID, orderID int64) (*entity.Order, error)
}

// OrderTx is one order-placement transaction. Everything executed through
// it commits together or not at all.
type OrderTx interface {
	// CartWithPrices reads the user's cart joined with current product
	// prices, locking the cart rows until the transaction ends.
	CartWithPrices(ctx context.Context, userID int64) ([]entity.CartLine, error)
	// InsertOrder writes the order header and returns its generated id.
	InsertOrder(ctx context.Context, userID int64, totalAmount float64) (int64, error)
	InsertOrderItems(ctx context.Context, orderID int64, items []entity.OrderItemSpec) error
	ClearCart(ctx context.Context, userID int64) error
	Commit() error
	Rollback() error
}
