// Package reskin contains the rebrand request lifecycle of the rental order
// domain. A client asks for an existing physical asset to be re-branded;
// the request is tracked from pending to complete or cancelled. Completion
// records the new asset name and proof photos and materializes a
// Reskin-category line item on the order at the admin-entered cost.
package reskin

import (
	"errors"
	"fmt"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("reskin Request must be created via NewRequest or RestoreRequest")

// Status is the lifecycle state of a reskin request.
// Requests move one way: Pending to Complete or Cancelled, terminal once
// resolved.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending is the initial status while the rebrand work is outstanding.
	Pending

	// Complete means the rebrand was carried out: the source asset is
	// transformed into a new asset and the order is charged for the work.
	Complete

	// Cancelled means the request was withdrawn with a reason. The source
	// asset's reservation is released and no charge is produced.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Complete:      "Complete",
		Cancelled:     "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("reskinStatus", fmt.Errorf("%d is not a valid reskin status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Request tracks a single asset rebrand from pending through completion or
// cancellation.
type Request struct {
	id            kernel.UUID
	orderID       kernel.UUID
	sourceAssetID kernel.UUID
	status        Status

	newAssetName     string
	completionPhotos []string
	cancelReason     string

	isConstructed bool
}

// NewRequest creates a pending reskin request against a source asset.
func NewRequest(id, orderID, sourceAssetID kernel.UUID) (*Request, error) {
	request := &Request{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		request.setID(id),
		request.setOrderID(orderID),
		request.setSourceAssetID(sourceAssetID),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// RestoreRequest reconstructs a reskin request from persistence.
func RestoreRequest(
	id, orderID, sourceAssetID kernel.UUID,
	status Status,
	newAssetName string,
	completionPhotos []string,
	cancelReason string,
) (*Request, error) {
	request, err := NewRequest(id, orderID, sourceAssetID)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	request.status = status
	request.newAssetName = newAssetName
	request.completionPhotos = append([]string(nil), completionPhotos...)
	request.cancelReason = cancelReason
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

// SourceAssetID returns the asset being rebranded.
func (r *Request) SourceAssetID() kernel.UUID {
	return r.sourceAssetID
}

// Status returns the current lifecycle status.
func (r *Request) Status() Status {
	return r.status
}

// NewAssetName returns the name recorded at completion, empty otherwise.
func (r *Request) NewAssetName() string {
	return r.newAssetName
}

// CompletionPhotos returns the proof photo references recorded at completion.
func (r *Request) CompletionPhotos() []string {
	return append([]string(nil), r.completionPhotos...)
}

// CancelReason returns the reason recorded at cancellation, empty otherwise.
func (r *Request) CancelReason() string {
	return r.cancelReason
}

// Complete resolves the request and materializes the Reskin-category line
// item charged at the admin-entered cost. It requires a new asset name and
// at least one completion photo; validation failures leave the request
// pending and produce no line item. The caller marks the source asset
// transformed only after Complete succeeds.
func (r *Request) Complete(itemID kernel.UUID, newAssetName string, completionPhotos []string, cost kernel.Money) (*lineitem.LineItem, error) {
	if r.status != Pending {
		return nil, errs.NewAlreadyResolvedError("reskinRequest", r.id.String(), r.status.String())
	}
	if newAssetName == "" {
		return nil, errs.NewMissingFieldsError("newAssetName")
	}
	if len(completionPhotos) == 0 {
		return nil, errs.NewMissingFieldsError("completionPhotos")
	}

	item, err := lineitem.NewReskinLineItem(itemID, "Reskin: "+newAssetName, cost, r.id)
	if err != nil {
		return nil, err
	}

	r.status = Complete
	r.newAssetName = newAssetName
	r.completionPhotos = append([]string(nil), completionPhotos...)
	return item, nil
}

// Cancel resolves the request without producing a line item. A non-empty
// reason is required. The caller releases any reservation on the source
// asset after Cancel succeeds.
func (r *Request) Cancel(reason string) error {
	if r.status != Pending {
		return errs.NewAlreadyResolvedError("reskinRequest", r.id.String(), r.status.String())
	}
	if reason == "" {
		return errs.NewMissingFieldsError("reason")
	}

	r.status = Cancelled
	r.cancelReason = reason
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

func (r *Request) setSourceAssetID(assetID kernel.UUID) error {
	if err := assetID.Validate(); err != nil {
		return err
	}
	r.sourceAssetID = assetID
	return nil
}
