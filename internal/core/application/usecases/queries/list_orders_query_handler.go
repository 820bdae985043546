package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// ListOrdersQueryHandler retrieves orders from the store, optionally
// filtered by customer. Orders are never deleted, so the result includes
// terminal states.
type ListOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(orderRepository ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle executes the query and returns the matching orders.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.HasCustomerFilter() {
		return h.orderRepository.GetAllByCustomer(ctx, query.CustomerID())
	}

	return h.orderRepository.GetAll(ctx)
}
