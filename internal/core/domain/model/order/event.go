package order

// Event is the closed set of domain events emitted by the order lifecycle.
//
// The unexported marker method seals the interface: only types in this
// package can implement it, so every consumer dispatching on the concrete
// type handles a known, fixed set of variants. Adding a variant means
// updating this package, and every exhaustive type switch over Event is
// then reviewed against the new set rather than silently falling through.
//
// Each event carries the full order snapshot at the moment of emission.
type Event interface {
	// Order returns the order snapshot carried by the event.
	Order() *Order

	isOrderEvent()
}

// CreatedEvent signals that a new order was created and is awaiting
// asynchronous processing.
type CreatedEvent struct {
	order *Order
}

// NewCreatedEvent creates a CreatedEvent carrying the given order snapshot.
func NewCreatedEvent(o *Order) CreatedEvent {
	return CreatedEvent{order: o}
}

// Order returns the order snapshot carried by the event.
func (e CreatedEvent) Order() *Order {
	return e.order
}

func (e CreatedEvent) isOrderEvent() {}

// CancelledEvent signals that a pending order was cancelled.
type CancelledEvent struct {
	order *Order
}

// NewCancelledEvent creates a CancelledEvent carrying the given order snapshot.
func NewCancelledEvent(o *Order) CancelledEvent {
	return CancelledEvent{order: o}
}

// Order returns the order snapshot carried by the event.
func (e CancelledEvent) Order() *Order {
	return e.order
}

func (e CancelledEvent) isOrderEvent() {}
