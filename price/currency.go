package price

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Points is the native price unit of an instrument, a fixed-point decimal.
// Different instruments place the decimal point differently.
type Points = decimal.Decimal

// decimalPlaces bounds compounding error when scaling amounts.
const decimalPlaces = 6

// CurrencyAmount is a fixed-point monetary value tagged with a currency code.
// The code is treated as an opaque tag; amounts in different currencies
// cannot be combined or compared.
type CurrencyAmount struct {
	Amount   decimal.Decimal
	Currency string
}

func NewAmount(amount decimal.Decimal, currency string) CurrencyAmount {
	return CurrencyAmount{Amount: amount, Currency: currency}
}

// Add returns the sum of two amounts. Panics on a currency mismatch,
// which is a programming error under the single-currency account model.
func (a CurrencyAmount) Add(b CurrencyAmount) CurrencyAmount {
	a.mustMatch(b)
	return CurrencyAmount{Amount: a.Amount.Add(b.Amount), Currency: a.Currency}
}

// Mul scales the amount by a dimensionless factor, rounded to 6 decimal
// places. The factor may also be a Points distance, turning a per-point
// size into a monetary value.
func (a CurrencyAmount) Mul(factor decimal.Decimal) CurrencyAmount {
	return CurrencyAmount{Amount: a.Amount.Mul(factor).Round(decimalPlaces), Currency: a.Currency}
}

// DivPoints divides the amount by a price distance, yielding a per-point
// size, rounded to 6 decimal places.
func (a CurrencyAmount) DivPoints(distance Points) CurrencyAmount {
	return CurrencyAmount{Amount: a.Amount.Div(distance).Round(decimalPlaces), Currency: a.Currency}
}

// Div returns the dimensionless ratio of two amounts of the same currency.
// Panics on a currency mismatch.
func (a CurrencyAmount) Div(b CurrencyAmount) decimal.Decimal {
	a.mustMatch(b)
	return a.Amount.Div(b.Amount)
}

func (a CurrencyAmount) LessThan(b CurrencyAmount) bool {
	a.mustMatch(b)
	return a.Amount.LessThan(b.Amount)
}

func (a CurrencyAmount) GreaterThan(b CurrencyAmount) bool {
	a.mustMatch(b)
	return a.Amount.GreaterThan(b.Amount)
}

func (a CurrencyAmount) Equal(b CurrencyAmount) bool {
	return a.Currency == b.Currency && a.Amount.Equal(b.Amount)
}

func (a CurrencyAmount) IsPositive() bool {
	return a.Amount.IsPositive()
}

func (a CurrencyAmount) String() string {
	return fmt.Sprintf("%s %s", a.Amount, a.Currency)
}

func (a CurrencyAmount) mustMatch(b CurrencyAmount) {
	if a.Currency != b.Currency {
		panic(fmt.Sprintf("currency mismatch: %s and %s", a.Currency, b.Currency))
	}
}
