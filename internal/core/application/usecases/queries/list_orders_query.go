package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves orders, optionally filtered by customer.
// An empty customer ID means all orders.
//
// Example:
//
//	all := NewListOrdersQuery("")
//	byCustomer := NewListOrdersQuery("CUST-42")
type ListOrdersQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for orders. Pass an empty customerID
// to list every order.
func NewListOrdersQuery(customerID string) ListOrdersQuery {
	return ListOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter; empty means no filter.
func (q ListOrdersQuery) CustomerID() string {
	return q.customerID
}

// HasCustomerFilter reports whether a customer filter is set.
func (q ListOrdersQuery) HasCustomerFilter() bool {
	return q.customerID != ""
}
