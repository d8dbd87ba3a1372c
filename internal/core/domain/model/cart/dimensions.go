package cart

import (
	"fmt"

	"shiprates/internal/pkg/errs"
)

// Dimensions is an immutable set of physical item dimensions in inches.
// Dimensions are only meaningful when all three sides are present and
// positive; items without a complete set are treated as dimension-less by the
// packer and validated on weight alone.
type Dimensions struct {
	length float64
	width  float64
	height float64
}

// NewDimensions creates a Dimensions value.
// All three sides must be positive.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	for name, v := range map[string]float64{"length": length, "width": width, "height": height} {
		if v <= 0 {
			return Dimensions{}, errs.NewValueIsInvalidErrorWithCause(
				name,
				fmt.Errorf("%v is not greater than 0", v),
			)
		}
	}
	return Dimensions{length: length, width: width, height: height}, nil
}

// Length returns the length in inches.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the width in inches.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the height in inches.
func (d Dimensions) Height() float64 {
	return d.height
}

// FloorArea returns length times width, the footprint the item occupies on a
// box floor.
func (d Dimensions) FloorArea() float64 {
	return d.length * d.width
}
