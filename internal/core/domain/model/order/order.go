package order

import (
	"errors"
	"strings"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/core/domain/model/pricing"
	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// PermissionChecker is the external permission lookup consulted before
// every state transition and before payment confirmation. The core never
// reads an ambient session; the actor is threaded through every call.
type PermissionChecker interface {
	CanPerform(actorID string, permissionKey string) bool
}

// EditPolicy is the caller-supplied set of statuses in which an order's
// line item ledger may still be edited. The exact boundary is a workflow
// policy, not a core rule, so it is injected rather than hardcoded.
type EditPolicy []Status

// Allows reports whether the policy permits ledger edits in the given status.
func (p EditPolicy) Allows(s Status) bool {
	for _, allowed := range p {
		if allowed == s {
			return true
		}
	}
	return false
}

// Details carries the informational, non-invariant-bearing attributes of an
// order: who to contact and where the event happens.
type Details struct {
	ContactName  string
	ContactEmail string
	ContactPhone string
	VenueName    string
	VenueAddress string
	EventStart   time.Time
	EventEnd     time.Time
}

// Payment records how an invoice was settled.
type Payment struct {
	Method    string
	Reference string
	Date      time.Time
	Notes     string
}

// Order is the aggregate root of the rental order domain. It composes the
// lifecycle state machine, the pricing breakdown, and the line item ledger,
// and keeps them consistent: any mutation of a pricing input recomputes the
// breakdown before the operation returns.
//
// Order follows these invariants:
//   - The status history is non-empty and its last entry's status always
//     equals the order's current status.
//   - Paid implies an invoice number is set and Invoiced preceded it.
//   - A failed operation leaves the order untouched; there is no partial
//     mutation.
//
// The aggregate performs no I/O. Permission checks and rate lookups are
// injected, and callers serialize writes per order; the version field backs
// the optimistic check at the persistence boundary.
type Order struct {
	id        kernel.UUID
	code      string
	companyID kernel.UUID
	details   Details

	status          Status
	history         []HistoryEntry
	financialStatus FinancialStatus

	jobNumber      *string
	deliveryWindow *Window
	pickupWindow   *Window

	invoiceNumber string
	invoicedAt    *time.Time
	invoicePaidAt *time.Time
	payment       *Payment

	baseOperations *pricing.BaseOperations
	transport      *pricing.Transport
	marginPercent  decimal.Decimal
	lineItems      []*lineitem.LineItem
	breakdown      *pricing.Breakdown

	version   int64
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// GenerateCode derives the human-readable order code from the order's ID.
func GenerateCode(id kernel.UUID) string {
	return "ORD-" + strings.ToUpper(id.String()[:8])
}

// NewOrder creates a Draft order for a company. The creating actor becomes
// the first entry of the status history.
func NewOrder(id, companyID kernel.UUID, details Details, actorID kernel.UUID) (*Order, error) {
	if err := errors.Join(id.Validate(), companyID.Validate(), actorID.Validate()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		id:        id,
		code:      GenerateCode(id),
		companyID: companyID,
		details:   details,
		status:    Draft,
		history: []HistoryEntry{
			NewHistoryEntry(Draft, now, actorID, "order created"),
		},
		financialStatus: FinancialNone,
		marginPercent:   decimal.Zero,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an order from a persisted snapshot. The history
// must be non-empty and its last entry must match the status.
func RestoreOrder(
	id kernel.UUID,
	code string,
	companyID kernel.UUID,
	details Details,
	status Status,
	history []HistoryEntry,
	financialStatus FinancialStatus,
	jobNumber *string,
	deliveryWindow, pickupWindow *Window,
	invoiceNumber string,
	invoicedAt, invoicePaidAt *time.Time,
	payment *Payment,
	baseOperations *pricing.BaseOperations,
	transport *pricing.Transport,
	marginPercent decimal.Decimal,
	lineItems []*lineitem.LineItem,
	version int64,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), companyID.Validate(), status.Validate(), financialStatus.Validate()); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("statusHistory")
	}
	if history[len(history)-1].Status() != status {
		return nil, errs.NewValueIsInvalidError("statusHistory does not end in the order's status")
	}
	if code == "" {
		code = GenerateCode(id)
	}

	o := &Order{
		id:              id,
		code:            code,
		companyID:       companyID,
		details:         details,
		status:          status,
		history:         append([]HistoryEntry(nil), history...),
		financialStatus: financialStatus,
		jobNumber:       jobNumber,
		deliveryWindow:  deliveryWindow,
		pickupWindow:    pickupWindow,
		invoiceNumber:   invoiceNumber,
		invoicedAt:      invoicedAt,
		invoicePaidAt:   invoicePaidAt,
		payment:         payment,
		baseOperations:  baseOperations,
		transport:       transport,
		marginPercent:   marginPercent,
		lineItems:       append([]*lineitem.LineItem(nil), lineItems...),
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}
	o.recompute()
	return o, nil
}

// Validate ensures the Order instance was properly constructed and its
// history invariant holds.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	if len(o.history) == 0 || o.history[len(o.history)-1].Status() != o.status {
		return errs.NewValueIsInvalidError("statusHistory does not end in the order's status")
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-readable order code.
func (o *Order) Code() string {
	return o.code
}

// CompanyID returns the owning company's identifier.
func (o *Order) CompanyID() kernel.UUID {
	return o.companyID
}

// Details returns the informational contact and venue attributes.
func (o *Order) Details() Details {
	return o.details
}

// SetDetails replaces the informational attributes. They carry no
// invariants, so this is permitted in any status.
func (o *Order) SetDetails(details Details) {
	o.details = details
	o.touch()
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the append-only status history.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// FinancialStatus returns the invoice lifecycle status.
func (o *Order) FinancialStatus() FinancialStatus {
	return o.financialStatus
}

// JobNumber returns the operator-assigned job number, nil when unset.
func (o *Order) JobNumber() *string {
	return o.jobNumber
}

// DeliveryWindow returns the assigned delivery slot, nil when unset.
func (o *Order) DeliveryWindow() *Window {
	return o.deliveryWindow
}

// PickupWindow returns the assigned pickup slot, nil when unset.
func (o *Order) PickupWindow() *Window {
	return o.pickupWindow
}

// InvoiceNumber returns the invoice number, empty until MarkInvoiced.
func (o *Order) InvoiceNumber() string {
	return o.invoiceNumber
}

// InvoicedAt returns when the invoice was raised, nil until MarkInvoiced.
func (o *Order) InvoicedAt() *time.Time {
	return o.invoicedAt
}

// InvoicePaidAt returns when the invoice was settled, nil until RecordPayment.
func (o *Order) InvoicePaidAt() *time.Time {
	return o.invoicePaidAt
}

// Payment returns the recorded payment, nil until RecordPayment.
func (o *Order) Payment() *Payment {
	return o.payment
}

// BaseOperations returns the installed base operations component, nil until
// the order has been priced.
func (o *Order) BaseOperations() *pricing.BaseOperations {
	return o.baseOperations
}

// Transport returns the installed transport component, nil until the order
// has been priced.
func (o *Order) Transport() *pricing.Transport {
	return o.transport
}

// MarginPercent returns the margin percentage applied to the subtotal.
func (o *Order) MarginPercent() decimal.Decimal {
	return o.marginPercent
}

// LineItems returns a copy of the ordered line item list.
func (o *Order) LineItems() []*lineitem.LineItem {
	return append([]*lineitem.LineItem(nil), o.lineItems...)
}

// Pricing returns the current breakdown, recomputed on every input
// mutation. It is nil until pricing inputs are installed; a non-nil
// breakdown is never stale.
func (o *Order) Pricing() *pricing.Breakdown {
	return o.breakdown
}

// Version returns the snapshot version used for the optimistic check at
// the persistence boundary.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Transition moves the order to the target status.
//
// It fails with TerminalState from Declined or Closed, InvalidTransition
// when the target is not in the current status's allowed-next set, and
// Unauthorized when the actor lacks the permission attached to the edge.
// On success it mutates the status and appends a history entry; it has no
// other side effects. Auxiliary data entry such as window assignment is a
// separate, explicitly invoked operation.
func (o *Order) Transition(target Status, actorID kernel.UUID, notes string, perms PermissionChecker) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewTerminalStateError(o.status.String())
	}
	if !o.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}

	key, _ := PermissionKey(o.status, target)
	if perms == nil || !perms.CanPerform(actorID.String(), key) {
		return errs.NewUnauthorizedError(actorID.String(), key)
	}

	o.status = target
	o.history = append(o.history, NewHistoryEntry(target, time.Now().UTC(), actorID, notes))
	o.touch()
	return nil
}

// AssignWindows sets the delivery and pickup slots. Assignment is permitted
// only once the order has reached Confirmed; both pairs must be supplied
// together and each window's start must precede its end. The relative order
// of the delivery end and the pickup start is deliberately not checked,
// matching the observed behavior of the surrounding system.
func (o *Order) AssignWindows(delivery, pickup Window) error {
	if !o.status.HasReachedConfirmed() {
		return errs.NewOrderLockedError(o.id.String(), o.status.String())
	}
	if err := errors.Join(delivery.Validate(), pickup.Validate()); err != nil {
		return err
	}

	o.deliveryWindow = &delivery
	o.pickupWindow = &pickup
	o.touch()
	return nil
}

// SetJobNumber sets or clears the operator-assigned job number. It is
// permitted in any status and is audit-logged only through the update
// timestamp, not the status history.
func (o *Order) SetJobNumber(value *string) {
	o.jobNumber = value
	o.touch()
}

// MarkInvoiced moves the financial status from None to Invoiced and records
// the invoice number. Paid orders fail with AlreadyPaid, already invoiced
// orders with AlreadyResolved.
func (o *Order) MarkInvoiced(invoiceNumber string, at time.Time) error {
	if o.financialStatus == Paid {
		return errs.NewAlreadyPaidError(o.id.String())
	}
	if o.financialStatus == Invoiced {
		return errs.NewAlreadyResolvedError("invoice", o.id.String(), o.financialStatus.String())
	}
	if invoiceNumber == "" {
		return errs.NewMissingFieldsError("invoiceNumber")
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	o.financialStatus = Invoiced
	o.invoiceNumber = invoiceNumber
	o.invoicedAt = &at
	o.touch()
	return nil
}

// RecordPayment settles the invoice. The order must be Invoiced; Paid
// orders fail with AlreadyPaid, and an absent method, reference, or date
// fails with MissingFields naming every absent field.
func (o *Order) RecordPayment(payment Payment) error {
	if o.financialStatus == Paid {
		return errs.NewAlreadyPaidError(o.id.String())
	}
	if o.financialStatus != Invoiced {
		return errs.NewValueIsInvalidErrorWithCause("financialStatus",
			errors.New("payment requires an invoiced order"))
	}

	var missing []string
	if payment.Method == "" {
		missing = append(missing, "method")
	}
	if payment.Reference == "" {
		missing = append(missing, "reference")
	}
	if payment.Date.IsZero() {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return errs.NewMissingFieldsError(missing...)
	}

	paidAt := payment.Date
	o.financialStatus = Paid
	o.payment = &payment
	o.invoicePaidAt = &paidAt
	o.touch()
	return nil
}

// SetPricingInputs installs the base operations and transport components
// and the margin percentage, then recomputes the breakdown. The margin may
// not be negative.
func (o *Order) SetPricingInputs(base pricing.BaseOperations, transport pricing.Transport, marginPercent decimal.Decimal) error {
	if err := errors.Join(base.Validate(), transport.Validate()); err != nil {
		return err
	}
	if marginPercent.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("marginPercent",
			errors.New(marginPercent.String()+" is negative"))
	}

	o.baseOperations = &base
	o.transport = &transport
	o.marginPercent = marginPercent
	o.recompute()
	o.touch()
	return nil
}

// AddLineItem attaches a line item to the order and recomputes the
// breakdown. The caller-supplied edit policy decides in which statuses the
// ledger is still editable; outside it the operation fails with OrderLocked.
func (o *Order) AddLineItem(item *lineitem.LineItem, policy EditPolicy) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !policy.Allows(o.status) {
		return errs.NewOrderLockedError(o.id.String(), o.status.String())
	}

	o.lineItems = append(o.lineItems, item)
	o.recompute()
	o.touch()
	return nil
}

// AttachReskinLineItem attaches the line item materialized by a completed
// reskin request. Reskin completion can happen late in the lifecycle, after
// the ledger's editable window closed, so the edit policy does not apply.
func (o *Order) AttachReskinLineItem(item *lineitem.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.ReskinRequestID() == nil {
		return errs.NewValueIsInvalidError("line item is not linked to a reskin request")
	}

	o.lineItems = append(o.lineItems, item)
	o.recompute()
	o.touch()
	return nil
}

// RemoveLineItem detaches a line item and recomputes the breakdown.
// Removal of a Reskin-category item linked to a completed reskin request is
// disallowed to preserve audit integrity.
func (o *Order) RemoveLineItem(itemID kernel.UUID, policy EditPolicy) error {
	if !policy.Allows(o.status) {
		return errs.NewOrderLockedError(o.id.String(), o.status.String())
	}

	for i, item := range o.lineItems {
		if !item.ID().IsEqual(itemID) {
			continue
		}
		if item.ReskinRequestID() != nil {
			return errs.NewLinkedRecordExistsError("lineItem", itemID.String(), "completed reskin request")
		}

		o.lineItems = append(o.lineItems[:i], o.lineItems[i+1:]...)
		o.recompute()
		o.touch()
		return nil
	}

	return errs.NewObjectNotFoundError("lineItem", itemID.String())
}

// SetLineItemBillingMode edits a line item's billing mode inside the
// editable window and recomputes the breakdown.
func (o *Order) SetLineItemBillingMode(itemID kernel.UUID, mode lineitem.BillingMode, policy EditPolicy) error {
	if !policy.Allows(o.status) {
		return errs.NewOrderLockedError(o.id.String(), o.status.String())
	}

	for _, item := range o.lineItems {
		if !item.ID().IsEqual(itemID) {
			continue
		}
		if err := item.SetBillingMode(mode); err != nil {
			return err
		}

		o.recompute()
		o.touch()
		return nil
	}

	return errs.NewObjectNotFoundError("lineItem", itemID.String())
}

// BumpVersion increments the snapshot version. Called by the persistence
// adapter after a successful optimistic write.
func (o *Order) BumpVersion() {
	o.version++
}

// recompute rebuilds the breakdown from the current pricing inputs. With no
// inputs installed yet there is nothing to compose and the breakdown stays
// nil; it can never hold a stale snapshot.
func (o *Order) recompute() {
	if o.baseOperations == nil || o.transport == nil {
		o.breakdown = nil
		return
	}
	breakdown := pricing.Compose(*o.baseOperations, *o.transport, o.lineItems, o.marginPercent)
	o.breakdown = &breakdown
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}
