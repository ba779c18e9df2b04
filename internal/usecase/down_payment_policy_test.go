package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPolicy(t *testing.T, def string, byLine map[string]string) *DownPaymentPolicy {
	t.Helper()
	m := make(map[string]decimal.Decimal, len(byLine))
	for k, v := range byLine {
		m[k] = decimal.RequireFromString(v)
	}
	p, err := NewDownPaymentPolicy(decimal.RequireFromString(def), m)
	require.NoError(t, err)
	return p
}

func TestNewDownPaymentPolicy_Validation(t *testing.T) {
	_, err := NewDownPaymentPolicy(decimal.Zero, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewDownPaymentPolicy(decimal.RequireFromString("0.5"), map[string]decimal.Decimal{"seragam": decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDownPaymentPolicy_FractionFor(t *testing.T) {
	p := mustPolicy(t, "0.5", map[string]string{" Seragam ": "0.3"})

	assert.True(t, p.FractionFor("seragam").Equal(decimal.RequireFromString("0.3")))
	assert.True(t, p.FractionFor("SERAGAM").Equal(decimal.RequireFromString("0.3")))
	assert.True(t, p.FractionFor("kaos").Equal(decimal.RequireFromString("0.5")))
	assert.True(t, p.FractionFor("").Equal(decimal.RequireFromString("0.5")))
}

func TestDownPaymentPolicy_CalculatorFor(t *testing.T) {
	p := mustPolicy(t, "0.5", map[string]string{"seragam": "0.3"})

	t.Run("order fraction wins over configuration", func(t *testing.T) {
		calc, err := p.CalculatorFor(decimal.RequireFromString("0.4"))
		require.NoError(t, err)
		assert.Equal(t, "0.4", calc.Fraction().String())
	})

	t.Run("missing fraction is not replaced by configuration", func(t *testing.T) {
		_, err := p.CalculatorFor(decimal.Zero)
		assert.ErrorIs(t, err, ErrFractionUnknown)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("invalid order fraction", func(t *testing.T) {
		_, err := p.CalculatorFor(decimal.RequireFromString("1.2"))
		assert.ErrorIs(t, err, ErrValidation)
	})
}
