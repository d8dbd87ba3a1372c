package kernel

import (
	"fmt"
	"math"

	"shiprates/internal/pkg/errs"
)

// Money is an immutable monetary amount in minor currency units (cents).
// All price arithmetic in the domain happens on integer cents; amounts are
// serialized to callers as plain cent strings, e.g. "5550" for $55.50.
type Money struct {
	cents int64
}

// NewMoney creates a Money from an amount of cents.
// Negative amounts are rejected; the rating domain has no refunds.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"cents",
			fmt.Errorf("%d is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromDollars converts a decimal dollar amount (as carriers quote it)
// to cents, rounding half away from zero.
func NewMoneyFromDollars(dollars float64) (Money, error) {
	if dollars < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"dollars",
			fmt.Errorf("%v is negative", dollars),
		)
	}
	return Money{cents: int64(math.Round(dollars * 100))}, nil
}

// Zero returns a zero monetary amount.
func Zero() Money {
	return Money{}
}

// Cents returns the amount in minor currency units.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// String returns the amount as a plain cent string, the wire format the
// checkout consumes.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.cents)
}
