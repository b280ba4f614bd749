package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/duongle/go-shop-backend/internal/entity"
	"github.com/duongle/go-shop-backend/internal/repository"
)

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a CatalogRepository backed by Postgres.
func NewCatalogRepository(db *sql.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Categories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT category_id, name FROM categories ORDER BY category_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *catalogRepository) ProductsByCategory(ctx context.Context, categoryID int64) ([]entity.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT product_id, name, description, price, category_id FROM products WHERE category_id = $1 ORDER BY product_id",
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *catalogRepository) ProductByID(ctx context.Context, productID int64) (*entity.Product, error) {
	var p entity.Product
	err := r.db.QueryRowContext(ctx,
		"SELECT product_id, name, description, price, category_id FROM products WHERE product_id = $1",
		productID,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return &p, nil
}

func (r *catalogRepository) Seed(ctx context.Context, categories []entity.Category, products []entity.Product) error {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	for _, c := range categories {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO categories (category_id, name) VALUES ($1, $2)",
			c.ID, c.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to seed category %d: %w", c.ID, err)
		}
	}

	for _, p := range products {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO products (name, description, price, category_id) VALUES ($1, $2, $3, $4)",
			p.Name, p.Description, p.Price, p.CategoryID,
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}

	// Seeded categories carry explicit ids, keep the sequence in step.
	_, err = r.db.ExecContext(ctx,
		"SELECT setval('categories_category_id_seq', (SELECT MAX(category_id) FROM categories))",
	)
	return err
}
