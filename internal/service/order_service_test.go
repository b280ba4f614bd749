package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duongle/go-shop-backend/internal/entity"
	"github.com/duongle/go-shop-backend/internal/repository"
)

// mockOrderTx implements repository.OrderTx for testing. It records every
// write so tests can assert on exactly what would have been committed.
type mockOrderTx struct {
	lines    []entity.CartLine
	linesErr error

	nextOrderID    int64
	insertOrderErr error
	insertItemsErr error
	clearErr       error
	commitErr      error
	rollbackErr    error

	insertedUserID int64
	insertedTotal  float64
	itemsOrderID   int64
	insertedItems  []entity.OrderItemSpec
	clearedUserID  int64
	committed      bool
	rolledBack     bool
}

func (m *mockOrderTx) CartWithPrices(_ context.Context, _ int64) ([]entity.CartLine, error) {
	return m.lines, m.linesErr
}

func (m *mockOrderTx) InsertOrder(_ context.Context, userID int64, totalAmount float64) (int64, error) {
	if m.insertOrderErr != nil {
		return 0, m.insertOrderErr
	}
	m.insertedUserID = userID
	m.insertedTotal = totalAmount
	return m.nextOrderID, nil
}

func (m *mockOrderTx) InsertOrderItems(_ context.Context, orderID int64, items []entity.OrderItemSpec) error {
	if m.insertItemsErr != nil {
		return m.insertItemsErr
	}
	m.itemsOrderID = orderID
	m.insertedItems = items
	return nil
}

func (m *mockOrderTx) ClearCart(_ context.Context, userID int64) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.clearedUserID = userID
	return nil
}

func (m *mockOrderTx) Commit() error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.committed = true
	return nil
}

func (m *mockOrderTx) Rollback() error {
	m.rolledBack = true
	return m.rollbackErr
}

// mockOrderRepo hands out one prepared transaction per Begin call.
type mockOrderRepo struct {
	txs      []*mockOrderTx
	beginErr error

	orders  []entity.Order
	order   *entity.Order
	findErr error
}

func (m *mockOrderRepo) Begin(_ context.Context) (repository.OrderTx, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	tx := m.txs[0]
	m.txs = m.txs[1:]
	return tx, nil
}

func (m *mockOrderRepo) FindByUser(_ context.Context, _ int64) ([]entity.Order, error) {
	return m.orders, m.findErr
}

func (m *mockOrderRepo) FindByID(_ context.Context, _, _ int64) (*entity.Order, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.order, nil
}

func twoLineCart() []entity.CartLine {
	return []entity.CartLine{
		{ProductID: 1, Quantity: 2, Price: 10},
		{ProductID: 2, Quantity: 3, Price: 5},
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	tx := &mockOrderTx{lines: twoLineCart(), nextOrderID: 42}
	repo := &mockOrderRepo{txs: []*mockOrderTx{tx}}
	svc := NewOrderService(repo)

	orderID, err := svc.PlaceOrder(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(42), orderID)
	assert.Equal(t, int64(7), tx.insertedUserID)
	assert.Equal(t, 35.0, tx.insertedTotal)
	assert.Equal(t, int64(42), tx.itemsOrderID)
	assert.Equal(t, []entity.OrderItemSpec{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
	}, tx.insertedItems)
	assert.Equal(t, int64(7), tx.clearedUserID)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	tx := &mockOrderTx{lines: nil}
	repo := &mockOrderRepo{txs: []*mockOrderTx{tx}}
	svc := NewOrderService(repo)

	_, err := svc.PlaceOrder(context.Background(), 7)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
	assert.Zero(t, tx.insertedUserID)
	assert.Nil(t, tx.insertedItems)
	assert.Zero(t, tx.clearedUserID)
}

func TestPlaceOrder_SecondCallSeesEmptyCart(t *testing.T) {
	// After a successful placement the cart is gone, so an immediate
	// second call must fail with the empty-cart error instead of
	// creating a duplicate order.
	first := &mockOrderTx{lines: twoLineCart(), nextOrderID: 1}
	second := &mockOrderTx{lines: nil}
	repo := &mockOrderRepo{txs: []*mockOrderTx{first, second}}
	svc := NewOrderService(repo)

	_, err := svc.PlaceOrder(context.Background(), 7)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(context.Background(), 7)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.False(t, second.committed)
}

func TestPlaceOrder_ItemInsertFailureRollsBack(t *testing.T) {
	cause := errors.New("foreign key violation")
	tx := &mockOrderTx{lines: twoLineCart(), nextOrderID: 42, insertItemsErr: cause}
	repo := &mockOrderRepo{txs: []*mockOrderTx{tx}}
	svc := NewOrderService(repo)

	_, err := svc.PlaceOrder(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrEmptyCart)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
	assert.Zero(t, tx.clearedUserID)
}

func TestPlaceOrder_CommitFailureRollsBack(t *testing.T) {
	cause := errors.New("connection reset")
	tx := &mockOrderTx{lines: twoLineCart(), nextOrderID: 42, commitErr: cause}
	repo := &mockOrderRepo{txs: []*mockOrderTx{tx}}
	svc := NewOrderService(repo)

	_, err := svc.PlaceOrder(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.True(t, tx.rolledBack)
}

func TestPlaceOrder_RollbackFailureDoesNotMaskCause(t *testing.T) {
	cause := errors.New("insert failed")
	tx := &mockOrderTx{
		lines:          twoLineCart(),
		insertOrderErr: cause,
		rollbackErr:    errors.New("rollback failed too"),
	}
	repo := &mockOrderRepo{txs: []*mockOrderTx{tx}}
	svc := NewOrderService(repo)

	_, err := svc.PlaceOrder(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Error(), "rollback failed too")
}

func TestPlaceOrder_BeginFailure(t *testing.T) {
	repo := &mockOrderRepo{beginErr: errors.New("pool exhausted")}
	svc := NewOrderService(repo)

	_, err := svc.PlaceOrder(context.Background(), 7)

	assert.Error(t, err)
}

func TestPlaceOrder_ItemsIsolatedPerOrder(t *testing.T) {
	// Two placements must reference only their own generated order ids.
	txA := &mockOrderTx{lines: []entity.CartLine{{ProductID: 1, Quantity: 1, Price: 10}}, nextOrderID: 100}
	txB := &mockOrderTx{lines: []entity.CartLine{{ProductID: 2, Quantity: 2, Price: 20}}, nextOrderID: 200}
	repo := &mockOrderRepo{txs: []*mockOrderTx{txA, txB}}
	svc := NewOrderService(repo)

	idA, err := svc.PlaceOrder(context.Background(), 1)
	require.NoError(t, err)
	idB, err := svc.PlaceOrder(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(100), idA)
	assert.Equal(t, int64(200), idB)
	assert.Equal(t, int64(100), txA.itemsOrderID)
	assert.Equal(t, int64(200), txB.itemsOrderID)
	assert.Equal(t, int64(1), txA.clearedUserID)
	assert.Equal(t, int64(2), txB.clearedUserID)
}

func TestPlaceOrder_OneItemPerCartRow(t *testing.T) {
	// Cart multiplicity is preserved row for row, no aggregation.
	tx := &mockOrderTx{
		lines: []entity.CartLine{
			{ProductID: 5, Quantity: 1, Price: 2},
			{ProductID: 6, Quantity: 4, Price: 3},
			{ProductID: 7, Quantity: 2, Price: 1.5},
		},
		nextOrderID: 9,
	}
	repo := &mockOrderRepo{txs: []*mockOrderTx{tx}}
	svc := NewOrderService(repo)

	_, err := svc.PlaceOrder(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, tx.insertedItems, 3)
	assert.Equal(t, 2.0+12.0+3.0, tx.insertedTotal)
}

func TestHistory_EmptyIsNotAnError(t *testing.T) {
	repo := &mockOrderRepo{orders: nil}
	svc := NewOrderService(repo)

	orders, err := svc.History(context.Background(), 7)

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockOrderRepo{findErr: repository.ErrNotFound}
	svc := NewOrderService(repo)

	_, err := svc.Get(context.Background(), 7, 99)

	assert.ErrorIs(t, err, ErrNotFound)
}
