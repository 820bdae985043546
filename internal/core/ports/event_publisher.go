package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// EventPublisher hands domain events to the message broker.
//
// Publish maps the event variant to its routing destination and sends the
// order snapshot. The call is fire-and-forget from the caller's
// perspective: it does not wait for broker acknowledgment, and callers must
// not treat a successful return as delivery confirmation. A broker outage
// here leaves the order durably persisted with no event emitted and no
// retry, since there is no outbox.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
