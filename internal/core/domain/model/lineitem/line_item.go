package lineitem

import (
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through one of the constructor functions.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem, NewReskinLineItem, or RestoreLineItem")

// LineItem is a billable, non-billable, or complimentary charge attached to
// an order. Once attached it is immutable except for billing mode edits,
// which the order aggregate only permits while the order is inside its
// editable window.
//
// The line total is derived: quantity times unit rate for Billable items,
// zero otherwise. Metadata is an opaque category-specific payload that never
// affects the total.
type LineItem struct {
	id          kernel.UUID
	description string
	category    Category
	billingMode BillingMode
	quantity    decimal.Decimal
	unit        string
	unitRate    kernel.Money
	metadata    map[string]string

	// reskinRequestID links a Reskin-category item to the completed reskin
	// request that materialized it. Items with this link cannot be removed.
	reskinRequestID *kernel.UUID

	isConstructed bool
}

// NewLineItem creates a line item from catalog selection or request approval.
// Validates that the description and unit are non-empty, the quantity is
// positive, and the unit rate is not negative.
func NewLineItem(
	id kernel.UUID,
	description string,
	category Category,
	billingMode BillingMode,
	quantity decimal.Decimal,
	unit string,
	unitRate kernel.Money,
	metadata map[string]string,
) (*LineItem, error) {
	item := &LineItem{
		metadata:      copyMetadata(metadata),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setDescription(description),
		item.setCategory(category),
		item.setBillingMode(billingMode),
		item.setQuantity(quantity),
		item.setUnit(unit),
		item.setUnitRate(unitRate),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// NewReskinLineItem creates the Reskin-category item produced by completing
// a reskin request. The item is billable at the admin-entered cost with a
// quantity of one and keeps a link to its source request.
func NewReskinLineItem(id kernel.UUID, description string, cost kernel.Money, requestID kernel.UUID) (*LineItem, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	item, err := NewLineItem(id, description, CategoryReskin, Billable, decimal.NewFromInt(1), "service", cost, nil)
	if err != nil {
		return nil, err
	}

	item.reskinRequestID = &requestID
	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence without
// re-running creation-time validation beyond the structural checks.
func RestoreLineItem(
	id kernel.UUID,
	description string,
	category Category,
	billingMode BillingMode,
	quantity decimal.Decimal,
	unit string,
	unitRate kernel.Money,
	metadata map[string]string,
	reskinRequestID *kernel.UUID,
) (*LineItem, error) {
	item, err := NewLineItem(id, description, category, billingMode, quantity, unit, unitRate, metadata)
	if err != nil {
		return nil, err
	}

	item.reskinRequestID = reskinRequestID
	return item, nil
}

// Validate ensures the LineItem instance was properly constructed.
func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (l *LineItem) ID() kernel.UUID {
	return l.id
}

// Description returns the human-readable charge description.
func (l *LineItem) Description() string {
	return l.description
}

// Category returns the line item's category.
func (l *LineItem) Category() Category {
	return l.category
}

// BillingMode returns the line item's billing mode.
func (l *LineItem) BillingMode() BillingMode {
	return l.billingMode
}

// Quantity returns the charged quantity.
func (l *LineItem) Quantity() decimal.Decimal {
	return l.quantity
}

// Unit returns the unit the quantity is expressed in.
func (l *LineItem) Unit() string {
	return l.unit
}

// UnitRate returns the rate per unit.
func (l *LineItem) UnitRate() kernel.Money {
	return l.unitRate
}

// Metadata returns a copy of the opaque category-specific payload.
func (l *LineItem) Metadata() map[string]string {
	return copyMetadata(l.metadata)
}

// ReskinRequestID returns the linked reskin request's ID, or nil when the
// item did not originate from a reskin completion.
func (l *LineItem) ReskinRequestID() *kernel.UUID {
	return l.reskinRequestID
}

// LineTotal returns quantity times unit rate for Billable items and zero
// for NonBillable and Complimentary items.
func (l *LineItem) LineTotal() kernel.Money {
	if l.billingMode != Billable {
		return kernel.ZeroMoney()
	}
	return l.unitRate.MulDecimal(l.quantity)
}

// SetBillingMode changes the billing mode. The order aggregate guards the
// editable window; the entity only validates the mode itself.
func (l *LineItem) SetBillingMode(mode BillingMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	l.billingMode = mode
	return nil
}

func (l *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *LineItem) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	l.description = description
	return nil
}

func (l *LineItem) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	l.category = category
	return nil
}

func (l *LineItem) setBillingMode(mode BillingMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	l.billingMode = mode
	return nil
}

func (l *LineItem) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewInvalidQuantityError("quantity", quantity.String())
	}
	l.quantity = quantity
	return nil
}

func (l *LineItem) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	l.unit = unit
	return nil
}

func (l *LineItem) setUnitRate(rate kernel.Money) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidError("unitRate")
	}
	l.unitRate = rate
	return nil
}

func copyMetadata(metadata map[string]string) map[string]string {
	if metadata == nil {
		return nil
	}
	copied := make(map[string]string, len(metadata))
	for k, v := range metadata {
		copied[k] = v
	}
	return copied
}
