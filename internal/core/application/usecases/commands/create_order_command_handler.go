package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates a new order in Pending status, persists it, and publishes a
// Created event for the asynchronous processing pipeline.
//
// Publishing is fire-and-forget: if the broker is unavailable the order
// stays durably Pending with no event and no retry. The handler logs the
// failure and still reports success to the caller.
type CreateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
	eventPublisher  ports.EventPublisher
	logger          *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	orderRepository ports.OrderRepository,
	eventPublisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
		logger:          logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
// Returns the created order so callers can report its identifier and status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err = h.orderRepository.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = h.eventPublisher.Publish(ctx, order.NewCreatedEvent(newOrder)); err != nil {
		// The order is already persisted; without an outbox there is no
		// retry and it remains Pending until reconciled manually.
		h.logger.ErrorContext(ctx, "Failed to publish created event",
			"orderId", newOrder.ID().String(), "error", err)
		return newOrder, nil
	}

	h.logger.InfoContext(ctx, "Order created and published",
		"orderId", newOrder.ID().String(), "customerId", newOrder.CustomerID())
	return newOrder, nil
}
