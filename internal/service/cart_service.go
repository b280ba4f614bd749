package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/duongle/go-shop-backend/internal/entity"
	"github.com/duongle/go-shop-backend/internal/repository"
)

// CartService orchestrates shopping cart reads and writes.
type CartService struct {
	cart    repository.CartRepository
	catalog repository.CatalogRepository
}

func NewCartService(cart repository.CartRepository, catalog repository.CatalogRepository) *CartService {
	return &CartService{cart: cart, catalog: catalog}
}

// Items returns the user's cart rows. An empty cart is an empty slice.
func (s *CartService) Items(ctx context.Context, userID int64) ([]entity.CartItem, error) {
	items, err := s.cart.Items(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if items == nil {
		items = []entity.CartItem{}
	}
	return items, nil
}

// Add puts a product into the cart. Adding a product that is already there
// replaces its quantity; the cart holds at most one row per product.
func (s *CartService) Add(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if _, err := s.catalog.ProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to check product: %w", err)
	}

	if err := s.cart.Upsert(ctx, userID, productID, quantity); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	slog.Info("Cart item added", "user_id", userID, "product_id", productID, "quantity", quantity)
	return nil
}

// UpdateQuantity changes the quantity of one cart entry.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	err := s.cart.UpdateQuantity(ctx, userID, productID, quantity)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

// Remove deletes one cart row by its id.
func (s *CartService) Remove(ctx context.Context, userID, cartID int64) error {
	err := s.cart.Remove(ctx, userID, cartID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}
