package kernel

import (
	"fmt"

	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// currencyScale is the number of fractional digits carried by all monetary
// amounts. Binary floating point is never used for money so repeated
// recomputation cannot drift.
const currencyScale = 2

// Money is an immutable fixed-precision monetary amount with two fractional
// digits. Arithmetic always rounds back to the currency scale.
//
// The zero value is a valid amount of 0.00, so Money can be embedded in
// aggregates without a constructor guard.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal, rounding to the currency scale.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(currencyScale)}
}

// NewMoneyFromString parses a Money from its decimal string representation.
// Negative amounts are rejected; rates and totals in the pricing model are
// never below zero.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", s))
	}
	return NewMoney(d), nil
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(currencyScale)}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(qty int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(qty)).Round(currencyScale)}
}

// MulDecimal returns the amount multiplied by a decimal factor, rounded to
// the currency scale.
func (m Money) MulDecimal(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor).Round(currencyScale)}
}

// Percent returns the given percentage of the amount, e.g. m.Percent(25)
// yields a quarter of m.
func (m Money) Percent(percent decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(percent).Div(decimal.NewFromInt(100)).Round(currencyScale)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with the currency scale, e.g. "1400.00".
func (m Money) String() string {
	return m.amount.StringFixed(currencyScale)
}
