package entities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) Money {
	t.Helper()
	m, err := NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestCalculateFinalPrice_Modes(t *testing.T) {
	tests := []struct {
		name      string
		base      int64
		vat       VatRate
		adjType   AdjustmentType
		value     int64
		wantNet   int64
		wantGross int64
	}{
		{"percent discount", 10000, Vat23, AdjustmentPercent, -10, 9000, 11070},
		{"percent markup", 10000, Vat8, AdjustmentPercent, 20, 12000, 12960},
		{"percent zero keeps base", 4321, Vat23, AdjustmentPercent, 0, 4321, 5314},
		{"percent rounds half up", 5, VatExempt, AdjustmentPercent, -50, 3, 3},
		{"percent full discount", 10000, Vat23, AdjustmentPercent, -100, 0, 0},
		{"fixed net delta", 5000, Vat23, AdjustmentFixedNet, -1500, 3500, 4305},
		{"fixed gross delta", 5000, Vat23, AdjustmentFixedGross, 1230, 6000, 7380},
		{"fixed gross exempt", 5000, VatExempt, AdjustmentFixedGross, 100, 5100, 5100},
		{"set net", 5000, Vat23, AdjustmentSetNet, 8000, 8000, 9840},
		{"set gross", 5000, Vat23, AdjustmentSetGross, 12300, 10000, 12300},
		{"set gross rounds", 0, Vat8, AdjustmentSetGross, 1000, 926, 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			net, gross := CalculateFinalPrice(mustMoney(t, tc.base), tc.vat, tc.adjType, tc.value)
			assert.Equal(t, tc.wantNet, net.Cents())
			assert.Equal(t, tc.wantGross, gross.Cents())
		})
	}
}

func TestCalculateFinalPrice_ClampsToZero(t *testing.T) {
	base := mustMoney(t, 1000)
	cases := map[AdjustmentType]int64{
		AdjustmentPercent:    -250,
		AdjustmentFixedNet:   -5000,
		AdjustmentFixedGross: -5000,
		AdjustmentSetNet:     -1,
		AdjustmentSetGross:   -1,
	}
	for adjType, value := range cases {
		net, gross := CalculateFinalPrice(base, Vat23, adjType, value)
		assert.True(t, net.IsZero(), "%s net", adjType)
		assert.True(t, gross.IsZero(), "%s gross", adjType)
	}
}

func TestCalculateFinalPrice_Properties(t *testing.T) {
	rates := []VatRate{Vat23, Vat8, Vat5, Vat0, VatExempt}
	types := []AdjustmentType{AdjustmentPercent, AdjustmentFixedNet, AdjustmentFixedGross, AdjustmentSetNet, AdjustmentSetGross}
	bases := []int64{0, 1, 99, 5000, 123457}
	values := []int64{-200, -100, -33, -1, 0, 1, 17, 150, 99999}

	for _, rate := range rates {
		for _, adjType := range types {
			for _, b := range bases {
				for _, v := range values {
					base := mustMoney(t, b)
					net, gross := CalculateFinalPrice(base, rate, adjType, v)
					require.GreaterOrEqual(t, net.Cents(), int64(0))
					require.GreaterOrEqual(t, gross.Cents(), net.Cents())

					again, againGross := CalculateFinalPrice(base, rate, adjType, v)
					require.Equal(t, net, again)
					require.Equal(t, gross, againGross)

					if rate == VatExempt {
						require.Equal(t, net, gross)
					}
					if adjType == AdjustmentSetNet {
						want := v
						if want < 0 {
							want = 0
						}
						require.Equal(t, want, net.Cents())
					}
				}
			}
		}
	}
}

func TestValidateAdjustment(t *testing.T) {
	assert.NoError(t, ValidateAdjustment(AdjustmentPercent, -100))
	assert.ErrorIs(t, ValidateAdjustment(AdjustmentPercent, -101), ErrInvalidAdjustment)
	assert.NoError(t, ValidateAdjustment(AdjustmentFixedNet, -100000))
	assert.NoError(t, ValidateAdjustment(AdjustmentFixedGross, 500))
	assert.ErrorIs(t, ValidateAdjustment(AdjustmentSetNet, -1), ErrInvalidAdjustment)
	assert.ErrorIs(t, ValidateAdjustment(AdjustmentSetGross, -1), ErrInvalidAdjustment)
	assert.ErrorIs(t, ValidateAdjustment("DISCOUNT", 1), ErrValidation)

	assert.NoError(t, ValidateAdjustment(AdjustmentPercent, MaxPercentAdjustment))
	assert.ErrorIs(t, ValidateAdjustment(AdjustmentPercent, MaxPercentAdjustment+1), ErrInvalidAdjustment)
	assert.ErrorIs(t, ValidateAdjustment(AdjustmentPercent, math.MaxInt64-50), ErrInvalidAdjustment)
	assert.NoError(t, ValidateAdjustment(AdjustmentFixedNet, -MaxAmountCents))
	assert.ErrorIs(t, ValidateAdjustment(AdjustmentFixedNet, math.MaxInt64), ErrInvalidAdjustment)
	assert.ErrorIs(t, ValidateAdjustment(AdjustmentFixedGross, math.MinInt64), ErrInvalidAdjustment)
	assert.NoError(t, ValidateAdjustment(AdjustmentSetNet, MaxAmountCents))
	assert.ErrorIs(t, ValidateAdjustment(AdjustmentSetNet, math.MaxInt64/10), ErrInvalidAdjustment)
	assert.ErrorIs(t, ValidateAdjustment(AdjustmentSetGross, MaxAmountCents+1), ErrInvalidAdjustment)
}

func TestValidatePricing(t *testing.T) {
	base := mustMoney(t, 10000)
	assert.NoError(t, ValidatePricing(base, Vat23, AdjustmentPercent, MaxPercentAdjustment))
	assert.NoError(t, ValidatePricing(base, Vat23, AdjustmentSetGross, MaxAmountCents))
	assert.ErrorIs(t, ValidatePricing(base, Vat23, AdjustmentSetNet, -1), ErrInvalidAdjustment)

	atLimit := mustMoney(t, MaxAmountCents)
	assert.NoError(t, ValidatePricing(atLimit, Vat23, AdjustmentPercent, 0))
	assert.ErrorIs(t, ValidatePricing(atLimit, Vat23, AdjustmentPercent, 1), ErrAmountOutOfRange)
	assert.ErrorIs(t, ValidatePricing(atLimit, Vat23, AdjustmentFixedNet, 1), ErrAmountOutOfRange)
	assert.ErrorIs(t, ValidatePricing(mustMoney(t, 1), Vat0, AdjustmentFixedGross, MaxAmountCents), ErrAmountOutOfRange)
	assert.ErrorIs(t, ValidatePricing(mustMoney(t, MaxAmountCents+1), Vat23, AdjustmentSetNet, 0), ErrAmountOutOfRange)
}

func TestCalculateFinalPrice_LargeValuesDoNotWrap(t *testing.T) {
	base := mustMoney(t, 10000)
	maxGross := MaxAmountCents + MaxAmountCents*23/100

	cases := []struct {
		name    string
		adjType AdjustmentType
		value   int64
	}{
		{"huge percent markup", AdjustmentPercent, math.MaxInt64 - 50},
		{"huge net delta", AdjustmentFixedNet, math.MaxInt64},
		{"huge gross delta", AdjustmentFixedGross, math.MaxInt64},
		{"huge net price", AdjustmentSetNet, math.MaxInt64 / 10},
		{"huge gross price", AdjustmentSetGross, math.MaxInt64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net, gross := CalculateFinalPrice(base, Vat23, tc.adjType, tc.value)
			assert.Equal(t, MaxAmountCents, net.Cents())
			assert.Equal(t, maxGross, gross.Cents())
		})
	}

	net, gross := CalculateFinalPrice(base, Vat23, AdjustmentSetNet, MaxAmountCents)
	assert.Equal(t, MaxAmountCents, net.Cents())
	assert.Equal(t, int64(1_230_000_000_000), gross.Cents())

	net, _ = CalculateFinalPrice(base, Vat23, AdjustmentFixedNet, math.MinInt64)
	assert.True(t, net.IsZero())
}

func TestParseAdjustmentType(t *testing.T) {
	got, err := ParseAdjustmentType(" set_gross ")
	require.NoError(t, err)
	assert.Equal(t, AdjustmentSetGross, got)

	got, err = ParseAdjustmentType("")
	require.NoError(t, err)
	assert.Equal(t, AdjustmentPercent, got)

	_, err = ParseAdjustmentType("HALF_OFF")
	assert.ErrorIs(t, err, ErrInvalidAdjustment)
}
