// Package errs provides standardized error types for the network-on-demand
// backend. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package includes error types for the common validation scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a numeric value breaks its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//
// and for the domain failure taxonomy of the order and lifecycle workflows:
//   - ServiceUnavailableError: the catalog service is not orderable
//   - BandwidthOutOfRangeError: a requested bandwidth fails catalog bounds
//   - AccessForbiddenError: cross-company access to an owned entity
//   - InvalidStateError: an explicitly gated transition was illegal
//   - ConcurrentModificationError: an optimistic update lost its race
//
// Each error type follows a consistent pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions, with and without cause where useful
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// All of these failures are recoverable at the caller's boundary: the HTTP
// adapter maps each sentinel to a client-facing rejection, none are treated
// as fatal process errors.
package errs
