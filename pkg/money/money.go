// Package money provides currency-safe helpers for ledger amounts using
// integer cents and the Fowler Money pattern. The assistant operates in
// Mexican pesos, so MXN is the default currency throughout.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MXN is the ISO-4217 code for the assistant's operating currency.
const MXN = "MXN"

// Money represents a monetary value with currency. It wraps go-money for
// safe arithmetic and display formatting.
type Money struct {
	m *money.Money
}

// New creates a Money value from cents (minor units).
func New(amountCents int64, currencyCode string) *Money {
	return &Money{m: money.New(amountCents, currencyCode)}
}

// NewFromDecimal converts a decimal amount into Money, rounding to the
// currency's minor unit.
func NewFromDecimal(amount decimal.Decimal, currencyCode string) *Money {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(MXN)
	}
	multiplier := decimal.New(1, int32(currency.Fraction))
	return New(amount.Mul(multiplier).Round(0).IntPart(), currency.Code)
}

// Zero returns a zero value in the given currency.
func Zero(currencyCode string) *Money {
	return New(0, currencyCode)
}

// Amount returns the value in minor units (cents).
func (m *Money) Amount() int64 {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// Currency returns the ISO-4217 currency code.
func (m *Money) Currency() string {
	if m == nil || m.m == nil {
		return ""
	}
	return m.m.Currency().Code
}

// Decimal returns the value in major units.
func (m *Money) Decimal() decimal.Decimal {
	if m == nil || m.m == nil {
		return decimal.Zero
	}
	fraction := int32(m.m.Currency().Fraction)
	return decimal.New(m.m.Amount(), -fraction)
}

// Display renders the amount with currency symbol and separators,
// e.g. "$1,574.14".
func (m *Money) Display() string {
	if m == nil || m.m == nil {
		return money.New(0, MXN).Display()
	}
	return m.m.Display()
}

// Add sums two Money values. Returns an error when currencies differ.
func (m *Money) Add(other *Money) (*Money, error) {
	if m == nil || m.m == nil {
		return other, nil
	}
	if other == nil || other.m == nil {
		return m, nil
	}
	result, err := m.m.Add(other.m)
	if err != nil {
		return nil, err
	}
	return &Money{m: result}, nil
}

// CentsFromDecimal converts a major-unit decimal into MXN cents. Shared by
// the ledger when persisting interpreted amounts.
func CentsFromDecimal(amount decimal.Decimal) int64 {
	return NewFromDecimal(amount, MXN).Amount()
}

// DisplayCents renders MXN cents for chat replies.
func DisplayCents(amountCents int64) string {
	return New(amountCents, MXN).Display()
}
