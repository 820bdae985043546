package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from creation through asynchronous processing to a
// terminal state.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a customer identifier
//   - Must have at least one item; items are immutable once the order exists
//   - The total amount equals the sum of quantity × unit price over the items
//     at the moment of creation and is never supplied by a caller
//   - Status transitions follow the Status state machine; terminal states
//     permit no further transitions
//   - Can only be created through NewOrder or RestoreOrder
//
// Every state change refreshes the updatedAt timestamp. Mutation is
// expressed as whole-object replacement at the persistence boundary: the
// aggregate is loaded, changed, and written back as a complete snapshot.
type Order struct {
	// id is the unique identifier for the order, immutable for its lifetime
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID string

	// items are the order lines, fixed at creation
	items []Item

	// totalAmount is the server-computed sum of the line totals
	totalAmount decimal.Decimal

	// status is the current state in the order lifecycle
	status Status

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt is refreshed on every status change
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
// The total amount is computed from the items; callers never supply it.
//
// Returns an error if the ID is invalid, the customer ID is empty,
// the item list is empty, or any item was not created via NewItem.
func NewOrder(id kernel.UUID, customerID string, items []Item) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		validateCustomerID(customerID),
		validateItems(items),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		id:            id,
		customerID:    customerID,
		items:         append([]Item(nil), items...),
		totalAmount:   totalOf(items),
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from a persisted snapshot.
// Unlike NewOrder it accepts the stored status, timestamps, and total
// amount as-is; the total is not recomputed because items cannot change
// after creation.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	totalAmount decimal.Decimal,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		validateCustomerID(customerID),
		validateItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		items:         append([]Item(nil), items...),
		totalAmount:   totalAmount,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// TotalAmount returns the server-computed order total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsTerminal reports whether the order is in a terminal status
// (Completed, Failed, or Cancelled).
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// IsCancellable reports whether the order can still be cancelled.
// Only a Pending order is cancellable.
func (o *Order) IsCancellable() bool {
	return o.status == Pending
}

// Cancel transitions the order to Cancelled.
//
// Only Pending orders can be cancelled. Returns an
// InvalidStateTransitionError if the current status forbids cancellation.
func (o *Order) Cancel() error {
	if !o.IsCancellable() {
		return errs.NewInvalidStateTransitionError(o.id.String(), o.status.String(), Cancelled.String())
	}

	o.status = Cancelled
	o.updatedAt = time.Now().UTC()
	return nil
}

// ChangeStatus moves the order to the target status and refreshes updatedAt.
//
// The target must be a valid status. A terminal current status forbids any
// further transition and yields an InvalidStateTransitionError; callers that
// need redelivery tolerance check IsTerminal first and skip instead.
func (o *Order) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewInvalidStateTransitionError(o.id.String(), o.status.String(), target.String())
	}

	o.status = target
	o.updatedAt = time.Now().UTC()
	return nil
}

func validateCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	return nil
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func totalOf(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
