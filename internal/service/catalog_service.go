package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/duongle/go-shop-backend/internal/entity"
	"github.com/duongle/go-shop-backend/internal/repository"
)

// CatalogService exposes read access to categories and products.
type CatalogService struct {
	catalog repository.CatalogRepository
}

func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) Categories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	return categories, nil
}

func (s *CatalogService) Products(ctx context.Context, categoryID int64) ([]entity.Product, error) {
	products, err := s.catalog.ProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if products == nil {
		products = []entity.Product{}
	}
	return products, nil
}

func (s *CatalogService) Product(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := s.catalog.ProductByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return product, nil
}
