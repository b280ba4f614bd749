package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/duongle/go-shop-backend/internal/entity"
	"github.com/duongle/go-shop-backend/internal/repository"
)

// SeedCatalog populates the catalog with demo data on first start.
func SeedCatalog(ctx context.Context, db *sql.DB) error {
	categories := []entity.Category{
		{ID: 1, Name: "Electronics"},
		{ID: 2, Name: "Furniture"},
		{ID: 3, Name: "Accessories"},
	}

	products := []entity.Product{
		{Name: "Wireless Noise-Cancelling Headphones", Description: "Premium over-ear headphones with active noise cancellation and 30-hour battery life.", Price: 349.99, CategoryID: 1},
		{Name: "Mechanical Keyboard RGB", Description: "Cherry MX switches with per-key RGB lighting and aluminum frame.", Price: 179.99, CategoryID: 1},
		{Name: "Ultrawide Curved Monitor 34\"", Description: "UWQHD 3440x1440 144Hz IPS panel with USB-C connectivity.", Price: 699.99, CategoryID: 1},
		{Name: "Ergonomic Office Chair", Description: "Adjustable lumbar support, breathable mesh, and 4D armrests.", Price: 549.99, CategoryID: 2},
		{Name: "Smart LED Desk Lamp", Description: "Adjustable color temperature, brightness levels, and USB charging port.", Price: 89.99, CategoryID: 2},
		{Name: "Premium Laptop Backpack", Description: "Water-resistant 17\" laptop compartment with anti-theft design.", Price: 129.99, CategoryID: 3},
	}

	var catalog repository.CatalogRepository = NewCatalogRepository(db)
	if err := catalog.Seed(ctx, categories, products); err != nil {
		return err
	}

	slog.Info("Catalog seeded", "categories", len(categories), "products", len(products))
	return nil
}
