package errs

import (
	"fmt"
	"strings"
)

// Sentinel errors for the generic value/object failure categories.
// Domain code wraps these through the typed constructors below so callers
// can classify failures with errors.Is.
var (
	ErrValueIsRequired        = fmt.Errorf("value is required")
	ErrValueIsInvalid         = fmt.Errorf("value is invalid")
	ErrValueIsOutOfRange      = fmt.Errorf("value is out of range")
	ErrObjectNotFound         = fmt.Errorf("object not found")
	ErrInvalidTransition      = fmt.Errorf("invalid transition")
	ErrUnauthorized           = fmt.Errorf("unauthorized")
	ErrTerminalState          = fmt.Errorf("terminal state")
	ErrInvalidQuantity        = fmt.Errorf("invalid quantity")
	ErrMissingFields          = fmt.Errorf("missing fields")
	ErrAlreadyResolved        = fmt.Errorf("already resolved")
	ErrAlreadyPaid            = fmt.Errorf("already paid")
	ErrOrderLocked            = fmt.Errorf("order locked")
	ErrLinkedRecordExists     = fmt.Errorf("linked record exists")
	ErrConcurrentModification = fmt.Errorf("concurrent modification")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", " "), "\n", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, sanitize(e.ParamName), e.Min, e.Max)
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", msg, e.Cause.Error()))
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), e.ID, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates the requested status is not reachable
// from the order's current status.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, sanitize(e.From), sanitize(e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnauthorizedError indicates the actor lacks the permission mapped to the
// attempted operation.
type UnauthorizedError struct {
	ActorID    string
	Permission string
}

func NewUnauthorizedError(actorID, permission string) *UnauthorizedError {
	return &UnauthorizedError{ActorID: actorID, Permission: permission}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: actor %s lacks permission %s", ErrUnauthorized, sanitize(e.ActorID), sanitize(e.Permission))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// TerminalStateError indicates a transition was attempted from a terminal status.
type TerminalStateError struct {
	Status string
}

func NewTerminalStateError(status string) *TerminalStateError {
	return &TerminalStateError{Status: status}
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: %s accepts no further transitions", ErrTerminalState, sanitize(e.Status))
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// InvalidQuantityError indicates a quantity was zero or negative.
type InvalidQuantityError struct {
	ParamName string
	Value     any
}

func NewInvalidQuantityError(paramName string, value any) *InvalidQuantityError {
	return &InvalidQuantityError{ParamName: paramName, Value: value}
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: %s is %v, must be greater than 0", ErrInvalidQuantity, sanitize(e.ParamName), e.Value)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// MissingFieldsError indicates one or more required input fields were absent.
type MissingFieldsError struct {
	Fields []string
}

func NewMissingFieldsError(fields ...string) *MissingFieldsError {
	return &MissingFieldsError{Fields: fields}
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingFields, sanitize(strings.Join(e.Fields, ", ")))
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}

// AlreadyResolvedError indicates a request that is no longer in its
// pending state was resolved again.
type AlreadyResolvedError struct {
	ParamName string
	ID        any
	Status    string
}

func NewAlreadyResolvedError(paramName string, id any, status string) *AlreadyResolvedError {
	return &AlreadyResolvedError{ParamName: paramName, ID: id, Status: status}
}

func (e *AlreadyResolvedError) Error() string {
	return fmt.Sprintf("%s: %s %v is %s", ErrAlreadyResolved, sanitize(e.ParamName), e.ID, sanitize(e.Status))
}

func (e *AlreadyResolvedError) Unwrap() error {
	return ErrAlreadyResolved
}

// AlreadyPaidError indicates a payment was recorded against an order whose
// invoice is already settled.
type AlreadyPaidError struct {
	OrderID any
}

func NewAlreadyPaidError(orderID any) *AlreadyPaidError {
	return &AlreadyPaidError{OrderID: orderID}
}

func (e *AlreadyPaidError) Error() string {
	return fmt.Sprintf("%s: order %v", ErrAlreadyPaid, e.OrderID)
}

func (e *AlreadyPaidError) Unwrap() error {
	return ErrAlreadyPaid
}

// OrderLockedError indicates a mutation was attempted outside the order's
// editable window.
type OrderLockedError struct {
	OrderID any
	Status  string
}

func NewOrderLockedError(orderID any, status string) *OrderLockedError {
	return &OrderLockedError{OrderID: orderID, Status: status}
}

func (e *OrderLockedError) Error() string {
	return fmt.Sprintf("%s: order %v is %s", ErrOrderLocked, e.OrderID, sanitize(e.Status))
}

func (e *OrderLockedError) Unwrap() error {
	return ErrOrderLocked
}

// LinkedRecordExistsError indicates a deletion was blocked by referential
// integrity with another record.
type LinkedRecordExistsError struct {
	ParamName string
	ID        any
	LinkedTo  string
}

func NewLinkedRecordExistsError(paramName string, id any, linkedTo string) *LinkedRecordExistsError {
	return &LinkedRecordExistsError{ParamName: paramName, ID: id, LinkedTo: linkedTo}
}

func (e *LinkedRecordExistsError) Error() string {
	return fmt.Sprintf("%s: %s %v is linked to %s", ErrLinkedRecordExists, sanitize(e.ParamName), e.ID, sanitize(e.LinkedTo))
}

func (e *LinkedRecordExistsError) Unwrap() error {
	return ErrLinkedRecordExists
}

// ConcurrentModificationError indicates a stale snapshot was written back;
// the persistence boundary detects the version mismatch and surfaces it here.
type ConcurrentModificationError struct {
	ParamName string
	Expected  int64
	Actual    int64
}

func NewConcurrentModificationError(paramName string, expected, actual int64) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, Expected: expected, Actual: actual}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s expected version %d, found %d",
		ErrConcurrentModification, sanitize(e.ParamName), e.Expected, e.Actual)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
