package lineitem

import (
	"errors"
	"fmt"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")

// RequestStatus is the lifecycle state of a line item request.
// Requests move one way: Requested to Approved or Rejected, terminal once
// resolved.
type RequestStatus int

const (
	// RequestStatusUnknown represents an invalid or undefined status.
	RequestStatusUnknown RequestStatus = iota

	// Requested is the initial status while the request awaits review.
	Requested

	// Approved means an admin accepted the request and a line item was
	// materialized from it.
	Approved

	// Rejected means an admin declined the request with a note. No line
	// item is produced.
	Rejected
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		RequestStatusUnknown: "Unknown",
		Requested:            "Requested",
		Approved:             "Approved",
		Rejected:             "Rejected",
	}
}

// Validate checks if the RequestStatus value is valid.
func (s RequestStatus) Validate() error {
	if _, ok := getRequestStatusStrings()[s]; !ok || s == RequestStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("requestStatus", fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s RequestStatus) String() string {
	if str, ok := getRequestStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Overrides carries the admin-edited values that materialize a line item
// when a request is approved. The admin may change any of the requested
// values before approval.
type Overrides struct {
	Description string
	Category    Category
	Quantity    decimal.Decimal
	Unit        string
	UnitRate    kernel.Money
	BillingMode BillingMode
}

// Request is a client-submitted ask for an additional charge on an order.
// It is reviewed by an admin who either approves it, materializing a
// LineItem with possibly edited values, or rejects it with a note.
type Request struct {
	id          kernel.UUID
	orderID     kernel.UUID
	description string
	status      RequestStatus
	adminNote   string

	isConstructed bool
}

// NewRequest creates a pending line item request for an order.
func NewRequest(id, orderID kernel.UUID, description string) (*Request, error) {
	request := &Request{
		status:        Requested,
		isConstructed: true,
	}

	if err := errors.Join(
		request.setID(id),
		request.setOrderID(orderID),
		request.setDescription(description),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(id, orderID kernel.UUID, description string, status RequestStatus, adminNote string) (*Request, error) {
	request, err := NewRequest(id, orderID, description)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	request.status = status
	request.adminNote = adminNote
	return request, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order the request is attached to.
func (r *Request) OrderID() kernel.UUID {
	return r.orderID
}

// Description returns the client-submitted description.
func (r *Request) Description() string {
	return r.description
}

// Status returns the current lifecycle status.
func (r *Request) Status() RequestStatus {
	return r.status
}

// AdminNote returns the note recorded on rejection, empty otherwise.
func (r *Request) AdminNote() string {
	return r.adminNote
}

// Approve resolves the request and materializes a line item from the
// admin-edited overrides. The request must still be in Requested status;
// re-approval fails with AlreadyResolved and mutates nothing. Override
// validation failures leave the request untouched.
func (r *Request) Approve(itemID kernel.UUID, overrides Overrides) (*LineItem, error) {
	if r.status != Requested {
		return nil, errs.NewAlreadyResolvedError("lineItemRequest", r.id.String(), r.status.String())
	}

	item, err := NewLineItem(
		itemID,
		overrides.Description,
		overrides.Category,
		overrides.BillingMode,
		overrides.Quantity,
		overrides.Unit,
		overrides.UnitRate,
		nil,
	)
	if err != nil {
		return nil, err
	}

	r.status = Approved
	return item, nil
}

// Reject resolves the request without producing a line item. A non-empty
// admin note is required; rejection of an already resolved request fails
// with AlreadyResolved.
func (r *Request) Reject(adminNote string) error {
	if r.status != Requested {
		return errs.NewAlreadyResolvedError("lineItemRequest", r.id.String(), r.status.String())
	}
	if adminNote == "" {
		return errs.NewMissingFieldsError("adminNote")
	}

	r.status = Rejected
	r.adminNote = adminNote
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Request) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	r.description = description
	return nil
}
