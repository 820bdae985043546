package queries_test

import (
	"context"
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
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

func newOrderFor(t *testing.T, customerID string) *order.Order {
	t.Helper()
	item, err := order.NewItem("PROD-001", 1, decimal.NewFromInt(5))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{item})
	require.NoError(t, err)
	return o
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("returns the order", func(t *testing.T) {
		o := newOrderFor(t, "CUST-42")
		query, err := queries.NewGetOrderQuery(o.ID())
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

		h := queries.NewGetOrderQueryHandler(repo)
		found, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.True(t, found.IsEqual(o))
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetOrderQuery(id)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

		h := queries.NewGetOrderQueryHandler(repo)
		found, err := h.Handle(ctx, query)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, found)
	})

	t.Run("rejects an invalid UUID at construction", func(t *testing.T) {
		var invalidID kernel.UUID
		_, err := queries.NewGetOrderQuery(invalidID)
		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		h := queries.NewGetOrderQueryHandler(new(MockOrderRepository))
		_, err := h.Handle(ctx, queries.GetOrderQuery{})
		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("lists all orders without a filter", func(t *testing.T) {
		all := []*order.Order{newOrderFor(t, "CUST-1"), newOrderFor(t, "CUST-2")}

		repo := new(MockOrderRepository)
		repo.On("GetAll", mock.Anything).Return(all, nil).Once()

		h := queries.NewListOrdersQueryHandler(repo)
		orders, err := h.Handle(ctx, queries.NewListOrdersQuery(""))

		require.NoError(t, err)
		assert.Len(t, orders, 2)
		repo.AssertNotCalled(t, "GetAllByCustomer", mock.Anything, mock.Anything)
	})

	t.Run("filters by customer", func(t *testing.T) {
		mine := []*order.Order{newOrderFor(t, "CUST-42")}

		repo := new(MockOrderRepository)
		repo.On("GetAllByCustomer", mock.Anything, "CUST-42").Return(mine, nil).Once()

		h := queries.NewListOrdersQueryHandler(repo)
		orders, err := h.Handle(ctx, queries.NewListOrdersQuery("CUST-42"))

		require.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, "CUST-42", orders[0].CustomerID())
		repo.AssertNotCalled(t, "GetAll", mock.Anything)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		h := queries.NewListOrdersQueryHandler(new(MockOrderRepository))
		_, err := h.Handle(ctx, queries.ListOrdersQuery{})
		require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
	})
}
