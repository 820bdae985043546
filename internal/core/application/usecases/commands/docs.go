// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: a validated
// command object, a handler that loads the aggregate, applies the change,
// and persists the new snapshot.
//
// The transition and cancel handlers together form the order lifecycle
// engine: they are the only components that change an order's status, so
// "what transitions are legal from what state" has exactly one authority.
// Both the HTTP surface and the message consumer route through them.
//
// Consistency note: every handler performs a non-atomic load-then-save
// against the order repository. Two concurrent transitions of the same
// order can both read the same pre-transition snapshot, and the second
// write overwrites the first (last write wins, no version check). The
// store's contract promises no read-modify-write atomicity, and the
// handlers do not add per-order locking on top of it.
package commands
