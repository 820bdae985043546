package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CancelOrderCommandHandler handles the business logic for order
// cancellation. Only a Pending order can be cancelled; any other status
// yields an InvalidStateTransitionError surfaced to the caller as a
// conflict.
//
// The cancellability check and the save are two separate store operations;
// a concurrent transition of the same order between them is not detected.
type CancelOrderCommandHandler struct {
	orderRepository ports.OrderRepository
	eventPublisher  ports.EventPublisher
	logger          *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	orderRepository ports.OrderRepository,
	eventPublisher ports.EventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
		logger:          logger.With("component", "cancel_order_handler"),
	}
}

// Handle processes the cancellation command.
// Returns the cancelled order, an ObjectNotFoundError if the order does
// not exist, or an InvalidStateTransitionError if it is not Pending.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.Cancel(); err != nil {
		return nil, err
	}

	if err = h.orderRepository.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = h.eventPublisher.Publish(ctx, order.NewCancelledEvent(existing)); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish cancelled event",
			"orderId", existing.ID().String(), "error", err)
		return existing, nil
	}

	h.logger.InfoContext(ctx, "Order cancelled",
		"orderId", existing.ID().String())
	return existing, nil
}
