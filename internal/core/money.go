// Package core holds the transaction domain model and the pure derivation
// functions the rest of the system is built on.
//
// This file contains amount parsing and formatting. Amounts are stored as
// positive cents; decimal arithmetic is only used at the parse/format
// boundary.
package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string to Money with half-up rounding on
// the third decimal place. Both dot (12.34) and comma (12,34) separators
// are accepted. Zero, negative, and signed inputs are rejected: the sign of
// a transaction comes from its type, never from the stored amount.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	cents := d.Shift(2).Round(0)
	if !cents.IsPositive() {
		return Money{}, ErrInvalidAmount
	}
	// Reject values that do not fit in int64 cents.
	if cents.Cmp(decimal.NewFromInt(math.MaxInt64)) > 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents.IntPart()}, nil
}

// Decimal returns the amount as a decimal value in whole currency units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// StringFixed formats the amount with exactly two decimal places and no
// currency symbol, e.g. "1234.50". The presentation layer applies whatever
// symbol the deployment is configured with.
func (m Money) StringFixed() string {
	return m.Decimal().StringFixed(2)
}
