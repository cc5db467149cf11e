// Package errs provides standardized error types for the rental order engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//   - Generic value/object errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError) used by constructors and
//     repositories.
//   - Order-domain error kinds (InvalidTransitionError, UnauthorizedError,
//     TerminalStateError, InvalidQuantityError, MissingFieldsError,
//     AlreadyResolvedError, AlreadyPaidError, OrderLockedError,
//     LinkedRecordExistsError, ConcurrentModificationError) that external
//     surfaces map directly to their own transport-level codes.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is(err, sentinel) classifies the failure
//
// The core performs no partial mutation on failure: an operation either
// succeeds and returns a consistent snapshot, or fails with one of these
// errors and leaves the snapshot untouched.
package errs
