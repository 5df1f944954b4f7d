package money

import (
	"errors"
	"fmt"
)

var ErrNegativeAmount = errors.New("money cannot be negative")

// Money is an amount in minor currency units. A single configured currency
// applies to every amount in the system.
type Money struct {
	cents int64
}

func New(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromCents is used when rebuilding values that were already validated on write.
func FromCents(cents int64) Money {
	if cents < 0 {
		cents = 0
	}
	return Money{cents: cents}
}

func Zero() Money {
	return Money{}
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

func (m Money) Mul(n int64) Money {
	if n <= 0 {
		return Money{}
	}
	return Money{cents: m.cents * n}
}

func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

func Max(a, b Money) Money {
	if a.cents >= b.cents {
		return a
	}
	return b
}
