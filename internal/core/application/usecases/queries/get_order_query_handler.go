package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// GetOrderQueryHandler retrieves a single order from the store.
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orderRepository ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepository: orderRepository}
}

// Handle executes the query. Returns the order, or an ObjectNotFoundError
// if no order with that identifier exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.Get(ctx, query.OrderID())
}
