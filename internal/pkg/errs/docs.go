// Package errs provides standardized error types for the delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value lies outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - BusinessRuleViolatedError: For operations rejected by a domain rule
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter relies on the sentinels to classify failures: ErrObjectNotFound
// maps to 404, ErrBusinessRuleViolated to 409, and the remaining validation
// sentinels to 400. Anything outside this family is treated as a server failure.
package errs
