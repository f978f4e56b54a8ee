package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// VatRate is one of the tax rates a service can be billed with.
type VatRate string

const (
	Vat23     VatRate = "23"
	Vat8      VatRate = "8"
	Vat5      VatRate = "5"
	Vat0      VatRate = "0"
	VatExempt VatRate = "ZW"
)

func ParseVatRate(raw string) (VatRate, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "23":
		return Vat23, nil
	case "8":
		return Vat8, nil
	case "5":
		return Vat5, nil
	case "0":
		return Vat0, nil
	case "ZW", "EXEMPT":
		return VatExempt, nil
	}
	return "", &ValidationError{Err: ErrInvalidVatRate, Details: fmt.Sprintf("unknown vat rate %q", raw)}
}

// Percent returns the numeric rate; EXEMPT counts as 0.
func (r VatRate) Percent() int64 {
	switch r {
	case Vat23:
		return 23
	case Vat8:
		return 8
	case Vat5:
		return 5
	default:
		return 0
	}
}

func (r VatRate) IsExempt() bool {
	return r == VatExempt
}

// CalculateVat truncates toward zero.
func (r VatRate) CalculateVat(net Money) Money {
	return Money{cents: vatOn(decimal.NewFromInt(net.cents), r).IntPart()}
}

func vatOn(net decimal.Decimal, r VatRate) decimal.Decimal {
	if r.IsExempt() {
		return decimal.Zero
	}
	return net.Mul(decimal.NewFromInt(r.Percent())).Div(hundred).Truncate(0)
}

func (r VatRate) CalculateGross(net Money) Money {
	return net.Add(r.CalculateVat(net))
}

func (r VatRate) String() string {
	return string(r)
}
