// Package orderrepo provides an in-memory implementation of the order
// repository port. Intended for tests and local runs without Postgres.
package orderrepo

import (
	"context"
	"errors"
	"sync"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

var ErrOrderAlreadyExists = errors.New("order with this ID already exists")

var _ ports.OrderRepository = &Repository{}

// Repository stores orders in a map guarded by a read-write mutex.
//
// The mutex protects individual map operations only. A load-then-save
// sequence spanning two calls is not atomic, matching the guarantees of
// the Postgres adapter: concurrent writers to the same order race and
// the last Update wins.
type Repository struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
}

// NewRepository creates an empty in-memory order repository.
func NewRepository() *Repository {
	return &Repository{orders: make(map[kernel.UUID]*order.Order)}
}

// Add stores a new order. Returns ErrOrderAlreadyExists if an order with
// the same ID is already present.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[aggregate.ID()]; ok {
		return ErrOrderAlreadyExists
	}

	stored, err := snapshot(aggregate)
	if err != nil {
		return err
	}

	r.orders[aggregate.ID()] = stored
	return nil
}

// Update replaces the stored order. Returns an ObjectNotFoundError if the
// order does not exist.
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID())
	}

	stored, err := snapshot(aggregate)
	if err != nil {
		return err
	}

	r.orders[aggregate.ID()] = stored
	return nil
}

// Get returns the order with the given ID, or an ObjectNotFoundError.
func (r *Repository) Get(_ context.Context, orderID kernel.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[orderID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}

	return snapshot(stored)
}

// GetAll returns every stored order.
func (r *Repository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.orders))
	for _, stored := range r.orders {
		copied, err := snapshot(stored)
		if err != nil {
			return nil, err
		}
		orders = append(orders, copied)
	}

	return orders, nil
}

// GetAllByCustomer returns every stored order belonging to the customer.
func (r *Repository) GetAllByCustomer(_ context.Context, customerID string) ([]*order.Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []*order.Order
	for _, stored := range r.orders {
		if stored.CustomerID() != customerID {
			continue
		}

		copied, err := snapshot(stored)
		if err != nil {
			return nil, err
		}
		orders = append(orders, copied)
	}

	return orders, nil
}

// snapshot makes a detached copy so callers cannot mutate stored state
// without going through Update.
func snapshot(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		o.ID(),
		o.CustomerID(),
		o.Items(),
		o.TotalAmount(),
		o.Status(),
		o.CreatedAt(),
		o.UpdatedAt(),
	)
}
