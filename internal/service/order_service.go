package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/duongle/go-shop-backend/internal/entity"
	"github.com/duongle/go-shop-backend/internal/repository"
)

// OrderService owns the order placement workflow and order history reads.
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// PlaceOrder converts the user's cart into a durable order: it reads the
// cart joined with current prices, writes the order header and its items,
// and clears the cart, all inside one transaction. The cart read locks the
// cart rows, so a concurrent placement for the same user serializes behind
// this one and then fails with ErrEmptyCart instead of double-spending.
//
// Exactly one of two outcomes is possible: the order and its items exist
// and the cart is empty, or nothing changed at all.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64) (int64, error) {
	tx, err := s.orders.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin order placement: %w", err)
	}

	orderID, err := s.placeInTx(ctx, tx, userID)
	if err != nil {
		s.rollback(tx, userID)
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		s.rollback(tx, userID)
		return 0, fmt.Errorf("failed to commit order placement: %w", err)
	}

	slog.Info("Order placed", "user_id", userID, "order_id", orderID)
	return orderID, nil
}

func (s *OrderService) placeInTx(ctx context.Context, tx repository.OrderTx, userID int64) (int64, error) {
	lines, err := tx.CartWithPrices(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}

	var totalAmount float64
	items := make([]entity.OrderItemSpec, 0, len(lines))
	for _, line := range lines {
		totalAmount += line.Price * float64(line.Quantity)
		items = append(items, entity.OrderItemSpec{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	orderID, err := tx.InsertOrder(ctx, userID, totalAmount)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	if err := tx.InsertOrderItems(ctx, orderID, items); err != nil {
		return 0, fmt.Errorf("failed to insert order items: %w", err)
	}
	if err := tx.ClearCart(ctx, userID); err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	return orderID, nil
}

// rollback abandons the transaction. A rollback failure is logged but never
// replaces the error that triggered it.
func (s *OrderService) rollback(tx repository.OrderTx, userID int64) {
	if err := tx.Rollback(); err != nil {
		slog.Error("Failed to roll back order placement", "user_id", userID, "err", err)
	}
}

// History returns the user's orders, newest first, each with its items.
// A user with no orders gets an empty slice.
func (s *OrderService) History(ctx context.Context, userID int64) ([]entity.Order, error) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	return orders, nil
}

// Get returns one of the user's orders with its items.
func (s *OrderService) Get(ctx context.Context, userID, orderID int64) (*entity.Order, error) {
	order, err := s.orders.FindByID(ctx, userID, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return order, nil
}
