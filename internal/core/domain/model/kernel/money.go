package kernel

import (
	"math"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in minor currency units (cents).
// The zero value is a valid zero amount.
type Money struct {
	cents int64
}

// NewMoney validates that cents is not negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("cents", cents, 0, int64(math.MaxInt64))
	}
	return Money{cents: cents}, nil
}

// Zero returns an amount of zero cents.
func Zero() Money {
	return Money{}
}

// Cents returns the amount as a count of minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns m + other, or errs.ValueIsOutOfRangeError when the sum exceeds
// the int64 range.
func (m Money) Add(other Money) (Money, error) {
	if m.cents > math.MaxInt64-other.cents {
		return Money{}, errs.NewValueIsOutOfRangeError("cents", other.cents, 0, int64(math.MaxInt64)-m.cents)
	}
	return Money{cents: m.cents + other.cents}, nil
}

// Times returns m multiplied by a non-negative quantity, or
// errs.ValueIsOutOfRangeError when the product exceeds the int64 range.
func (m Money) Times(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt)
	}

	q := int64(quantity)
	if q != 0 && m.cents > math.MaxInt64/q {
		return Money{}, errs.NewValueIsOutOfRangeError("cents", m.cents, 0, int64(math.MaxInt64)/q)
	}
	return Money{cents: m.cents * q}, nil
}

// Percent applies rate (0.08 means 8%) and rounds the exact decimal product to
// whole cents using round-half-to-even.
func (m Money) Percent(rate decimal.Decimal) Money {
	product := decimal.NewFromInt(m.cents).Mul(rate).RoundBank(0)
	return Money{cents: product.IntPart()}
}

func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimals, e.g. "40.88". Currency is not included.
func (m Money) String() string {
	return decimal.New(m.cents, -2).StringFixed(2)
}
