// Package errs provides the standardized error types used throughout the
// application.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Beyond generic validation errors, the package carries the business error
// taxonomy of the ordering core: insufficient stock (business rejection,
// reported to the caller, never retried), remote authentication and remote
// call failures (logged, the affected establishment or order is skipped for
// the polling cycle), and the not-pending reconciliation signal.
package errs
