package services

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the sales tax applied when no rate is configured (8%).
var DefaultTaxRate = decimal.RequireFromString("0.08")

var _ order.TaxPolicy = FlatTaxPolicy{}

// FlatTaxPolicy applies a single rate to the whole subtotal.
//
// Rounding rule: the exact decimal product subtotal × rate is rounded to whole
// cents half-to-even. No floating point is involved.
//
// Example:
//
//	policy, _ := NewFlatTaxPolicy(DefaultTaxRate)
//	subtotal, _ := kernel.NewMoney(3600)
//	tax := policy.Tax(subtotal) // 288 cents
type FlatTaxPolicy struct {
	rate decimal.Decimal
}

// NewFlatTaxPolicy validates that rate is within [0, 1).
func NewFlatTaxPolicy(rate decimal.Decimal) (FlatTaxPolicy, error) {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return FlatTaxPolicy{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"tax rate", rate.String(), "0", "1 (exclusive)",
			fmt.Errorf("rate must be a fraction, e.g. 0.08 for 8%%"),
		)
	}
	return FlatTaxPolicy{rate: rate}, nil
}

// Rate returns the configured rate.
func (p FlatTaxPolicy) Rate() decimal.Decimal {
	return p.rate
}

// Tax implements order.TaxPolicy.
func (p FlatTaxPolicy) Tax(subtotal kernel.Money) kernel.Money {
	return subtotal.Percent(p.rate)
}
