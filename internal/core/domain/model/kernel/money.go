package kernel

import (
	"fmt"
	"math"

	"driverapi/internal/pkg/errs"
)

// Money is a non-negative amount in the smallest currency unit.
type Money struct {
	cents int64
}

// NewMoney rounds amount to two decimals. Negative, NaN and infinite amounts are rejected.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, math.MaxInt32)
	}

	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// MoneyFromCents builds an amount from cents, clamping negatives to zero.
func MoneyFromCents(cents int64) Money {
	if cents < 0 {
		cents = 0
	}
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

// Sub returns m - other, never below zero.
func (m Money) Sub(other Money) Money {
	return MoneyFromCents(m.cents - other.cents)
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float64())
}
