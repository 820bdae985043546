// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Item: A value object for a single order line
//   - Status: A state machine that enforces valid order status transitions
//   - Event: A closed set of domain events emitted by the order lifecycle
//
// Key business rules:
//   - Orders must have a valid unique identifier, a customer, and at least one item
//   - The total amount is always computed from the items, never supplied by a caller
//   - Order status follows a defined workflow:
//     Pending -> Processing -> Completed/Failed, or Pending -> Cancelled
//   - Completed, Failed, and Cancelled are terminal: no transition leaves them
//   - Only a Pending order can be cancelled
//   - Items are immutable once the order exists
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
