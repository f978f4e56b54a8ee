package entities

import "fmt"

// Money is a non-negative amount in minor currency units (cents).
//
// The zero value is a valid amount of zero. Values are immutable: every
// operation returns a new Money.
type Money struct {
	cents int64
}

// Zero is the additive identity.
var Zero = Money{}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, fmt.Errorf("%w: %d", ErrNegativeMoney, cents)
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Subtract fails instead of producing a negative amount.
func (m Money) Subtract(other Money) (Money, error) {
	return NewMoney(m.cents - other.cents)
}

func (m Money) Times(factor int64) (Money, error) {
	return NewMoney(m.cents * factor)
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
