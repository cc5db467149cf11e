package http

import (
	"errors"
	"net/http"

	"rentops/internal/pkg/errs"
)

// statusOf maps a domain error kind onto an HTTP status code. Validation
// kinds map to 400, missing objects to 404, authorization to 403, and every
// state-machine or concurrency conflict to 409.
func statusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrTerminalState),
		errors.Is(err, errs.ErrOrderLocked),
		errors.Is(err, errs.ErrAlreadyResolved),
		errors.Is(err, errs.ErrAlreadyPaid),
		errors.Is(err, errs.ErrLinkedRecordExists),
		errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidQuantity),
		errors.Is(err, errs.ErrMissingFields):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
