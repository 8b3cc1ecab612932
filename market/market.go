// Package market holds the static trading rules of one instrument and
// validates proposed entries against them.
package market

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/charypar/betty/price"
	"github.com/charypar/betty/trade"
)

var (
	ErrDealTooSmall        = errors.New("deal size below market minimum")
	ErrStopTooClose        = errors.New("stop-loss not far enough from entry")
	ErrInsufficientBalance = errors.New("margin requirement exceeds balance")
)

// Market is never mutated; it only answers whether an entry is allowed.
type Market struct {
	Code            string
	MarginFactor    decimal.Decimal       // fraction of notional held as margin
	MinDealSize     price.CurrencyAmount  // per point
	MinStopDistance price.Points
}

// ValidateEntry checks a proposed entry against the market rules, returning
// the first failure: deal size, then margin, then stop distance. It is
// purely advisory and has no side effects; the caller decides what to do
// with a rejection.
func (m Market) ValidateEntry(e trade.Entry, balance price.CurrencyAmount) error {
	if e.Size.LessThan(m.MinDealSize) {
		return fmt.Errorf("size %s: %w", e.Size, ErrDealTooSmall)
	}

	if m.marginRequirement(e).GreaterThan(balance) {
		return fmt.Errorf("margin %s over balance %s: %w", m.marginRequirement(e), balance, ErrInsufficientBalance)
	}

	if e.Price.Sub(e.Stop).Abs().LessThan(m.MinStopDistance) {
		return fmt.Errorf("stop distance %s: %w", e.Price.Sub(e.Stop).Abs(), ErrStopTooClose)
	}

	return nil
}

func (m Market) marginRequirement(e trade.Entry) price.CurrencyAmount {
	return e.Size.Mul(e.Price).Mul(m.MarginFactor)
}
