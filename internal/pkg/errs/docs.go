// Package errs provides standardized error types for the checkout application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value has a wrong format or content
//   - ValueIsOutOfRangeError: For when a value falls outside its accepted interval
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValueIsNotUniqueError: For when a value is already owned by another object
//   - StockConflictError: For when a requested quantity exceeds the available stock
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// FieldErrors collects many of these errors keyed by request field, so a caller
// can report every problem of a request in one response instead of failing fast.
package errs
