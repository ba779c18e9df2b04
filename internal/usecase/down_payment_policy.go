package usecase

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DownPaymentPolicy selects the single down-payment fraction used for a product
// line. The same fraction is stored on the order at creation and used again
// when the payment is charged, so the figure shown always matches the figure
// charged.
type DownPaymentPolicy struct {
	defaultFraction decimal.Decimal
	byLine          map[string]decimal.Decimal
}

func NewDownPaymentPolicy(defaultFraction decimal.Decimal, byLine map[string]decimal.Decimal) (*DownPaymentPolicy, error) {
	if err := validateFraction(defaultFraction); err != nil {
		return nil, err
	}
	normalized := make(map[string]decimal.Decimal, len(byLine))
	for line, f := range byLine {
		if err := validateFraction(f); err != nil {
			return nil, err
		}
		normalized[normalizeProductLine(line)] = f
	}
	return &DownPaymentPolicy{defaultFraction: defaultFraction, byLine: normalized}, nil
}

// FractionFor returns the configured fraction for the product line, or the
// default one.
func (p *DownPaymentPolicy) FractionFor(productLine string) decimal.Decimal {
	if f, ok := p.byLine[normalizeProductLine(productLine)]; ok {
		return f
	}
	return p.defaultFraction
}

// ErrFractionUnknown means the order carries no recorded down-payment fraction.
var ErrFractionUnknown = validationErrorf("down payment fraction unknown for order")

// CalculatorFor builds the calculator for an order from the fraction recorded
// when it was drafted. The current configuration is never substituted for a
// missing fraction.
func (p *DownPaymentPolicy) CalculatorFor(orderFraction decimal.Decimal) (AmountCalculator, error) {
	if orderFraction.IsZero() {
		return AmountCalculator{}, ErrFractionUnknown
	}
	return NewAmountCalculator(orderFraction)
}

func normalizeProductLine(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}
