// Package errs provides standardized error types for the autoshop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when an operation violates a business invariant
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels: the HTTP
// adapter maps ErrObjectNotFound, the validation sentinels and ErrConflict to
// distinct status codes. Storage failures are intentionally not modeled here;
// they propagate as raw driver errors and force a transaction rollback.
package errs
