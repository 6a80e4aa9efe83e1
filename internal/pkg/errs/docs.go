// Package errs holds the typed errors shared by the marketplace core and its
// adapters.
//
// Every type pairs with a sentinel so callers can branch with errors.Is while
// still reading details with errors.As:
//   - ObjectNotFoundError (ErrObjectNotFound): a crop, order, buyer or notification is missing
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - InvalidStateError (ErrInvalidState): an order transition the status does not allow
//   - VersionIsInvalidError (ErrVersionIsInvalid): a lost optimistic concurrency race
//   - ConstraintViolationError (ErrConstraintViolation): dependent rows block a deletion
//   - AccessIsForbiddenError (ErrAccessIsForbidden): the actor does not own the object
//
// The HTTP adapter maps the sentinels onto status codes; anything else is an
// unexpected failure and goes to the error log.
package errs
