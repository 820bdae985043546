package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store is a pure ledger keyed by order identifier: writes are
// whole-object replacements of the snapshot under that key.
//
// Implementations must make individual reads and writes safe for concurrent
// use, but no transactional read-modify-write guarantee is promised to
// callers: a load-change-save sequence against the same identifier can race
// with a concurrent one, and the last write wins. The lifecycle engine
// accepts and documents this.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored snapshot of an existing order.
	// Returns an ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no order with that ID exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order. Orders are retained
	// indefinitely, terminal states included.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves all orders placed by the given customer.
	GetAllByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)
}
