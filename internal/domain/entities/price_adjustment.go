package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AdjustmentType selects how an adjustment value modifies a catalog base price.
type AdjustmentType string

const (
	// AdjustmentPercent: value is a percentage offset, -10 is a 10% discount.
	AdjustmentPercent AdjustmentType = "PERCENT"
	// AdjustmentFixedNet: value is a signed cents delta on the net price.
	AdjustmentFixedNet AdjustmentType = "FIXED_NET"
	// AdjustmentFixedGross: value is a signed cents delta on the gross price.
	AdjustmentFixedGross AdjustmentType = "FIXED_GROSS"
	// AdjustmentSetNet: value is the final net price.
	AdjustmentSetNet AdjustmentType = "SET_NET"
	// AdjustmentSetGross: value is the final gross price.
	AdjustmentSetGross AdjustmentType = "SET_GROSS"
)

const (
	// MaxAmountCents bounds base prices, fixed adjustments and final net prices.
	MaxAmountCents int64 = 1_000_000_000_000
	// MaxPercentAdjustment is the largest accepted markup, 100x the base price.
	MaxPercentAdjustment int64 = 10_000
)

var (
	hundred   = decimal.NewFromInt(100)
	maxAmount = decimal.NewFromInt(MaxAmountCents)
)

// AdjustmentOrDefault treats a missing adjustment type as PERCENT.
func AdjustmentOrDefault(t AdjustmentType) AdjustmentType {
	if t == "" {
		return AdjustmentPercent
	}
	return t
}

func ParseAdjustmentType(raw string) (AdjustmentType, error) {
	t := AdjustmentType(strings.ToUpper(strings.TrimSpace(raw)))
	switch t {
	case AdjustmentPercent, AdjustmentFixedNet, AdjustmentFixedGross, AdjustmentSetNet, AdjustmentSetGross:
		return t, nil
	case "":
		return AdjustmentPercent, nil
	}
	return "", &ValidationError{Err: ErrInvalidAdjustment, Details: fmt.Sprintf("unknown adjustment type %q", raw)}
}

// ValidateAdjustment rejects values that only make sense as input mistakes
// and values outside the amounts the calculator is defined for.
func ValidateAdjustment(t AdjustmentType, value int64) error {
	switch t {
	case AdjustmentPercent:
		if value < -100 {
			return &ValidationError{Err: ErrInvalidAdjustment, Details: fmt.Sprintf("percent discount %d exceeds 100%%", value)}
		}
		if value > MaxPercentAdjustment {
			return &ValidationError{Err: ErrInvalidAdjustment, Details: fmt.Sprintf("percent markup %d exceeds %d%%", value, MaxPercentAdjustment)}
		}
	case AdjustmentFixedNet, AdjustmentFixedGross:
		if value < -MaxAmountCents || value > MaxAmountCents {
			return &ValidationError{Err: ErrInvalidAdjustment, Details: fmt.Sprintf("%s delta %d is out of range", t, value)}
		}
	case AdjustmentSetNet, AdjustmentSetGross:
		if value < 0 {
			return &ValidationError{Err: ErrInvalidAdjustment, Details: fmt.Sprintf("%s price cannot be negative", t)}
		}
		if value > MaxAmountCents {
			return &ValidationError{Err: ErrInvalidAdjustment, Details: fmt.Sprintf("%s price %d exceeds %d", t, value, MaxAmountCents)}
		}
	default:
		return &ValidationError{Err: ErrInvalidAdjustment, Details: fmt.Sprintf("unknown adjustment type %q", t)}
	}
	return nil
}

// ValidatePricing checks the adjustment and that the line it prices stays
// within MaxAmountCents.
func ValidatePricing(base Money, vat VatRate, t AdjustmentType, value int64) error {
	if err := ValidateAdjustment(t, value); err != nil {
		return err
	}
	if base.cents > MaxAmountCents {
		return &ValidationError{Err: ErrAmountOutOfRange, Details: fmt.Sprintf("base price %d exceeds %d", base.cents, MaxAmountCents)}
	}
	if net := finalNet(base, vat, t, value); net.GreaterThan(maxAmount) {
		return &ValidationError{Err: ErrAmountOutOfRange, Details: fmt.Sprintf("final net price %s exceeds %d", net, MaxAmountCents)}
	}
	return nil
}

// CalculateFinalPrice derives the final net and gross price of a line.
//
// It is pure: the same inputs always give the same prices, which is what
// lets a stored line be re-priced and audited. The net price clamps to
// [0, MaxAmountCents]; ValidatePricing rejects inputs that would hit the top.
func CalculateFinalPrice(base Money, vat VatRate, t AdjustmentType, value int64) (net Money, gross Money) {
	net = clampAmount(finalNet(base, vat, t, value))
	return net, vat.CalculateGross(net)
}

func finalNet(base Money, vat VatRate, t AdjustmentType, value int64) decimal.Decimal {
	b := decimal.NewFromInt(base.cents)
	v := decimal.NewFromInt(value)
	switch t {
	case AdjustmentPercent:
		return b.Mul(hundred.Add(v)).Div(hundred).Round(0)
	case AdjustmentFixedNet:
		return b.Add(v)
	case AdjustmentFixedGross:
		return grossToNet(b.Add(vatOn(b, vat)).Add(v), vat)
	case AdjustmentSetNet:
		return v
	case AdjustmentSetGross:
		return grossToNet(v, vat)
	}
	return b
}

func grossToNet(gross decimal.Decimal, vat VatRate) decimal.Decimal {
	divisor := decimal.NewFromInt(100 + vat.Percent())
	return gross.Mul(hundred).Div(divisor).Round(0)
}

func clampAmount(d decimal.Decimal) Money {
	switch {
	case d.Sign() < 0:
		return Zero
	case d.GreaterThan(maxAmount):
		return Money{cents: MaxAmountCents}
	}
	return Money{cents: d.IntPart()}
}
