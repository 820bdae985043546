package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand represents a request to move an order to a target
// status. It is issued by the message consumer to drive an order through
// Processing to a terminal state.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition the order with
// the given identifier to the target status. Validates that the order ID
// and the target status are valid.
func NewTransitionOrderCommand(orderID kernel.UUID, target order.Status) (TransitionOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		target.Validate(),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the status the order should move to.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}
