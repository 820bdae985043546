package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func sampleItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("PROD-001", 2, decimal.RequireFromString("9.99"))
	require.NoError(t, err)
	return []order.Item{item}
}

func sampleOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "CUST-42", sampleItems(t))
	require.NoError(t, err)
	return o
}
