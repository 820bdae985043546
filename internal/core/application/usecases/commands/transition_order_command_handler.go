package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// TransitionOrderCommandHandler is the transition authority of the order
// lifecycle engine. The message consumer routes every status change through
// it rather than mutating orders ad hoc.
//
// An order already in a terminal status is not an error: the transition is
// skipped with a warning and the unchanged order is returned, so broker
// redelivery of an already-terminal event cannot crash the pipeline.
//
// The load and the save are two separate store operations; concurrent
// transitions of the same order can interleave and the last write wins.
type TransitionOrderCommandHandler struct {
	orderRepository ports.OrderRepository
	logger          *slog.Logger
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
func NewTransitionOrderCommandHandler(
	orderRepository ports.OrderRepository,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		orderRepository: orderRepository,
		logger:          logger.With("component", "transition_order_handler"),
	}
}

// Handle moves the order to the command's target status and persists the
// new snapshot. Returns the updated order, the unchanged order for a
// terminal no-op, or an ObjectNotFoundError if the order does not exist.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if existing.IsTerminal() {
		h.logger.WarnContext(ctx, "Skipping transition for order in terminal status",
			"orderId", existing.ID().String(),
			"status", existing.Status().String(),
			"target", cmd.Target().String())
		return existing, nil
	}

	if err = existing.ChangeStatus(cmd.Target()); err != nil {
		return nil, err
	}

	if err = h.orderRepository.Update(ctx, existing); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order transitioned",
		"orderId", existing.ID().String(), "status", existing.Status().String())
	return existing, nil
}
