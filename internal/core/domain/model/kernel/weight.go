package kernel

import (
	"fmt"

	"shiprates/internal/pkg/errs"
)

// GramsPerPound is the exact conversion factor between the two units the
// system sees: carts arrive with gram weights, carriers and box capacities
// speak pounds.
const GramsPerPound = 453.59237

// Weight is an immutable value object representing a mass, normalized to
// pounds internally. A zero Weight is a valid weight of zero pounds.
//
// Example:
//
//	w, err := kernel.NewWeightFromGrams(1000)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%.3f lb", w.Pounds()) // 2.205 lb
type Weight struct {
	pounds float64
}

// NewWeightFromGrams creates a Weight from a gram value.
// Negative values are rejected; zero is allowed.
func NewWeightFromGrams(grams float64) (Weight, error) {
	if grams < 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"grams",
			fmt.Errorf("%v is negative", grams),
		)
	}
	return Weight{pounds: grams / GramsPerPound}, nil
}

// NewWeightFromPounds creates a Weight from a pound value.
// Negative values are rejected; zero is allowed.
func NewWeightFromPounds(pounds float64) (Weight, error) {
	if pounds < 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"pounds",
			fmt.Errorf("%v is negative", pounds),
		)
	}
	return Weight{pounds: pounds}, nil
}

// Pounds returns the weight in pounds.
func (w Weight) Pounds() float64 {
	return w.pounds
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{pounds: w.pounds + other.pounds}
}

// MultiplyBy returns the weight scaled by a non-negative factor, used to
// total up multi-quantity cart lines.
func (w Weight) MultiplyBy(factor int) Weight {
	if factor < 0 {
		factor = 0
	}
	return Weight{pounds: w.pounds * float64(factor)}
}

// IsZero reports whether the weight is exactly zero.
func (w Weight) IsZero() bool {
	return w.pounds == 0
}

// LessThanOrEqual reports whether w does not exceed other.
func (w Weight) LessThanOrEqual(other Weight) bool {
	return w.pounds <= other.pounds
}

// String formats the weight for logs, e.g. "2.205 lb".
func (w Weight) String() string {
	return fmt.Sprintf("%.3f lb", w.pounds)
}
