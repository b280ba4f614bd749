package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/duongle/go-shop-backend/internal/entity"
	"github.com/duongle/go-shop-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates an OrderRepository backed by Postgres.
func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Begin(ctx context.Context) (repository.OrderTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &orderTx{tx: tx}, nil
}

func (r *orderRepository) FindByUser(ctx context.Context, userID int64) ([]entity.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT order_id, user_id, total_amount, created_at FROM orders WHERE user_id = $1 ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	for i := range orders {
		items, err := r.itemsByOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *orderRepository) FindByID(ctx context.Context, userID, orderID int64) (*entity.Order, error) {
	var o entity.Order
	err := r.db.QueryRowContext(ctx,
		"SELECT order_id, user_id, total_amount, created_at FROM orders WHERE user_id = $1 AND order_id = $2",
		userID, orderID,
	).Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	items, err := r.itemsByOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *orderRepository) itemsByOrder(ctx context.Context, orderID int64) ([]entity.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT order_item_id, order_id, product_id, quantity FROM order_items WHERE order_id = $1 ORDER BY order_item_id",
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// orderTx wraps one sql.Tx for the placement workflow.
type orderTx struct {
	tx *sql.Tx
}

// CartWithPrices locks the user's cart rows for the duration of the
// transaction, so a concurrent placement for the same user waits here and
// then sees an empty cart.
func (t *orderTx) CartWithPrices(ctx context.Context, userID int64) ([]entity.CartLine, error) {
	rows, err := t.tx.QueryContext(ctx,
		`SELECT cart.product_id, cart.quantity, products.price
		 FROM cart
		 JOIN products ON cart.product_id = products.product_id
		 WHERE cart.user_id = $1
		 ORDER BY cart.cart_id
		 FOR UPDATE OF cart`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart with prices: %w", err)
	}
	defer rows.Close()

	var lines []entity.CartLine
	for rows.Next() {
		var line entity.CartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.Price); err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (t *orderTx) InsertOrder(ctx context.Context, userID int64, totalAmount float64) (int64, error) {
	var orderID int64
	err := t.tx.QueryRowContext(ctx,
		"INSERT INTO orders (user_id, total_amount) VALUES ($1, $2) RETURNING order_id",
		userID, totalAmount,
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return orderID, nil
}

func (t *orderTx) InsertOrderItems(ctx context.Context, orderID int64, items []entity.OrderItemSpec) error {
	for _, item := range items {
		_, err := t.tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)",
			orderID, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}
	return nil
}

func (t *orderTx) ClearCart(ctx context.Context, userID int64) error {
	_, err := t.tx.ExecContext(ctx, "DELETE FROM cart WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (t *orderTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (t *orderTx) Rollback() error {
	return t.tx.Rollback()
}
