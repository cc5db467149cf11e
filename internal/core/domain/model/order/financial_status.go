package order

import (
	"fmt"

	"rentops/internal/pkg/errs"
)

// FinancialStatus tracks the invoice lifecycle of an order. It is an
// independent axis from Status: an order can be invoiced and paid at any
// point of its operational lifecycle.
//
// The only legal progression is FinancialNone → Invoiced → Paid, which
// keeps the invariant that a paid order always had an invoice first.
type FinancialStatus int

const (
	// FinancialNone means no invoice has been raised.
	FinancialNone FinancialStatus = iota

	// Invoiced means an invoice was raised and awaits payment.
	Invoiced

	// Paid means the invoice was settled.
	Paid
)

func getFinancialStatusStrings() map[FinancialStatus]string {
	return map[FinancialStatus]string{
		FinancialNone: "None",
		Invoiced:      "Invoiced",
		Paid:          "Paid",
	}
}

// Validate checks if the FinancialStatus value is valid.
func (s FinancialStatus) Validate() error {
	if _, ok := getFinancialStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("financialStatus", fmt.Errorf("%d is not a valid financial status", s))
	}
	return nil
}

// String returns the human-readable name of the financial status.
func (s FinancialStatus) String() string {
	if str, ok := getFinancialStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
