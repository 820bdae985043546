// Package errs provides standardized error types for the orders application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - InvalidStateTransitionError: For when an operation is forbidden by the
//     object's current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinel errors make classification at boundaries straightforward:
// the HTTP adapter maps ErrObjectNotFound to 404 and
// ErrInvalidStateTransition to 409 via errors.Is.
package errs
