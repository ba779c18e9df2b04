package usecase

import (
	"github.com/shopspring/decimal"
)

var (
	one = decimal.NewFromInt(1)
)

// AmountCalculator computes payment amounts for one order. All amounts are in
// the smallest currency unit; the fraction only enters through ComputeDP.
type AmountCalculator struct {
	dpFraction decimal.Decimal
}

func NewAmountCalculator(dpFraction decimal.Decimal) (AmountCalculator, error) {
	if err := validateFraction(dpFraction); err != nil {
		return AmountCalculator{}, err
	}
	return AmountCalculator{dpFraction: dpFraction}, nil
}

func (c AmountCalculator) Fraction() decimal.Decimal {
	return c.dpFraction
}

// ComputeDP returns round-half-up(total × dpFraction).
func (c AmountCalculator) ComputeDP(total int64) (int64, error) {
	if total < 0 {
		return 0, validationErrorf("total must not be negative (got %d)", total)
	}
	// Round is half away from zero, which is half-up for non-negative values.
	return decimal.NewFromInt(total).Mul(c.dpFraction).Round(0).IntPart(), nil
}

// ComputeRemainder returns total minus the down payment actually recorded as
// paid. It never recomputes the down payment from the fraction.
func (c AmountCalculator) ComputeRemainder(total, dpAmount int64) (int64, error) {
	if total < 0 {
		return 0, validationErrorf("total must not be negative (got %d)", total)
	}
	if dpAmount < 0 || dpAmount > total {
		return 0, validationErrorf("recorded down payment %d out of range for total %d", dpAmount, total)
	}
	return total - dpAmount, nil
}

func (c AmountCalculator) ComputeFull(total int64) (int64, error) {
	if total < 0 {
		return 0, validationErrorf("total must not be negative (got %d)", total)
	}
	return total, nil
}

func validateFraction(f decimal.Decimal) error {
	if !f.IsPositive() || f.GreaterThanOrEqual(one) {
		return validationErrorf("down payment fraction must be between 0 and 1 exclusive (got %s)", f.String())
	}
	return nil
}
