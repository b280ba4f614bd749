package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/duongle/go-shop-backend/internal/entity"
	"github.com/duongle/go-shop-backend/internal/repository"
)

type cartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a CartRepository backed by Postgres.
func NewCartRepository(db *sql.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Items(ctx context.Context, userID int64) ([]entity.CartItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT cart_id, user_id, product_id, quantity FROM cart WHERE user_id = $1 ORDER BY cart_id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}
	defer rows.Close()

	var items []entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *cartRepository) Upsert(ctx context.Context, userID, productID int64, quantity int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cart (user_id, product_id, quantity) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
		userID, productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE cart SET quantity = $1 WHERE user_id = $2 AND product_id = $3",
		quantity, userID, productID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, cartID int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM cart WHERE user_id = $1 AND cart_id = $2",
		userID, cartID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
