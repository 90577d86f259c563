// Package errs provides standardized error types for the épicerie gateway.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - BusinessRejectionError: For requests refused by the marketplace server
//   - TransportError: For requests that never completed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// On top of the individual types, KindOf classifies any error into the three
// failure categories the UI must distinguish: local validation (never sent to
// the server), business rejection (refresh local state before retrying), and
// transport failure (safe to retry as-is). IsRetryable is a shorthand for the
// last category.
package errs
