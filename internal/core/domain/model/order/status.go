package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Processing ──┬──> Completed
//	          │                 └──> Failed
//	          └──> Cancelled
//
// Completed, Failed, and Cancelled are terminal states: once an order
// reaches one of them, no further transition is permitted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be picked up for processing
	// and are the only orders that can be cancelled.
	Pending

	// Processing indicates the order has been picked up by the
	// asynchronous processing pipeline.
	Processing

	// Completed indicates the order was processed successfully.
	// This is a terminal state.
	Completed

	// Failed indicates processing of the order failed.
	// This is a terminal state.
	Failed

	// Cancelled indicates the order was cancelled before processing began.
	// This is a terminal state.
	Cancelled
)

// getStatusNames returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusNames() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
		Failed:     "FAILED",
		Cancelled:  "CANCELLED",
	}
}

// getValidStatusNames returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusNames() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
		Failed:     "FAILED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromName parses a Status from its wire name (e.g. "PENDING").
// Returns a ValueIsInvalidError for names outside the valid set.
// This function is used when reconstructing orders from persistence
// or decoding order snapshots from the broker.
func StatusFromName(name string) (Status, error) {
	for status, statusName := range getValidStatusNames() {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Completed, Failed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// IsTerminal reports whether the status permits no further transitions.
// Completed, Failed, and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed || s == Cancelled
}

// String returns the wire name of the status ("PENDING", "PROCESSING", ...).
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}
