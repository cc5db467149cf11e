package lineitem

import (
	"fmt"

	"rentops/internal/pkg/errs"
)

// Category classifies what kind of work or goods a line item charges for.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryAssembly covers on-site assembly and dismantling work.
	CategoryAssembly

	// CategoryEquipment covers rented or consumed equipment.
	CategoryEquipment

	// CategoryHandling covers warehouse handling and packing work.
	CategoryHandling

	// CategoryReskin covers asset rebranding charges. Reskin items are
	// materialized by completing a reskin request and stay linked to it.
	CategoryReskin

	// CategoryTransport covers ad-hoc transport charges beyond the order's
	// composed transport rate.
	CategoryTransport

	// CategoryOther covers anything the catalog does not classify.
	CategoryOther
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:   "Unknown",
		CategoryAssembly:  "Assembly",
		CategoryEquipment: "Equipment",
		CategoryHandling:  "Handling",
		CategoryReskin:    "Reskin",
		CategoryTransport: "Transport",
		CategoryOther:     "Other",
	}
}

// Validate checks if the Category value is valid. CategoryUnknown and any
// other values are invalid.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok || c == CategoryUnknown {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the human-readable name of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// CategoryFromString parses a category from its string representation, as
// used by transport adapters.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getCategoryStrings() {
		if str == s && category != CategoryUnknown {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", s))
}

// BillingMode decides whether a line item counts toward the client-billed
// total.
type BillingMode int

const (
	// BillingModeUnknown represents an invalid or undefined billing mode.
	BillingModeUnknown BillingMode = iota

	// Billable items contribute quantity times unit rate to the logistics
	// subtotal.
	Billable

	// NonBillable items are listed for operational tracking only and carry
	// a zero line total.
	NonBillable

	// Complimentary items are explicit goodwill waivers and carry a zero
	// line total.
	Complimentary
)

func getBillingModeStrings() map[BillingMode]string {
	return map[BillingMode]string{
		BillingModeUnknown: "Unknown",
		Billable:           "Billable",
		NonBillable:        "NonBillable",
		Complimentary:      "Complimentary",
	}
}

// Validate checks if the BillingMode value is valid.
func (b BillingMode) Validate() error {
	if _, ok := getBillingModeStrings()[b]; !ok || b == BillingModeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("billingMode", fmt.Errorf("%d is not a valid billing mode", b))
	}
	return nil
}

// String returns the human-readable name of the billing mode.
func (b BillingMode) String() string {
	if str, ok := getBillingModeStrings()[b]; ok {
		return str
	}
	return "Unknown"
}

// BillingModeFromString parses a billing mode from its string
// representation, as used by transport adapters.
func BillingModeFromString(s string) (BillingMode, error) {
	for mode, str := range getBillingModeStrings() {
		if str == s && mode != BillingModeUnknown {
			return mode, nil
		}
	}
	return BillingModeUnknown, errs.NewValueIsInvalidErrorWithCause("billingMode", fmt.Errorf("%q is not a valid billing mode", s))
}
