package entity

import (
	"time"
)

// Category groups products in the catalog.
type Category struct {
	ID   int64  `json:"category_id"`
	Name string `json:"name"`
}

// Product represents a product in the store.
type Product struct {
	ID          int64   `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int64   `json:"category_id"`
}

// CartItem is one row of a user's shopping cart. At most one row exists
// per (user, product) pair.
type CartItem struct {
	ID        int64 `json:"cart_id"`
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartLine is a cart row joined with the product's current price. It is
// the snapshot the order workflow converts into an order.
type CartLine struct {
	ProductID int64
	Quantity  int
	Price     float64
}

// OrderItemSpec is the part of a cart line that survives into an order item.
type OrderItemSpec struct {
	ProductID int64
	Quantity  int
}

// OrderItem is a line item within a placed order. Immutable once written.
type OrderItem struct {
	ID        int64 `json:"order_item_id"`
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Order is the order header plus its items.
type Order struct {
	ID          int64       `json:"order_id"`
	UserID      int64       `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"order_items"`
}

// User is a registered account. PasswordHash is a bcrypt hash, never the
// raw credential.
type User struct {
	ID           int64  `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
