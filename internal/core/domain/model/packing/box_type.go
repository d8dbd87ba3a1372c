package packing

import (
	"errors"
	"fmt"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// Safety margins applied to nominal box limits when making packing
// decisions. Floor-area exhaustion is the more common practical constraint,
// so it gets the larger derating.
const (
	WeightFillFactor = 0.90
	AreaFillFactor   = 0.85
)

var (
	// ErrBoxTypeIsNotConstructed indicates that a BoxType was not created via NewBoxType.
	ErrBoxTypeIsNotConstructed = errors.New("BoxType must be created via NewBoxType constructor")

	// ErrBoxNameIsRequired indicates an empty box name.
	ErrBoxNameIsRequired = errs.NewValueIsRequiredError("name")
)

// BoxType is an immutable physical container definition from the box catalog:
// inner dimensions in inches, the maximum gross weight the box may reach, and
// the tare (empty) weight of the box itself.
//
// Invariant: maxWeight > emptyWeight, so every box can hold at least some
// item weight.
type BoxType struct { //nolint:recvcheck //using for validation
	name        string
	length      float64
	width       float64
	height      float64
	maxWeight   kernel.Weight
	emptyWeight kernel.Weight

	guard guard.ConstructorGuard
}

// NewBoxType creates a validated BoxType.
func NewBoxType(
	name string,
	length, width, height float64,
	maxWeight, emptyWeight kernel.Weight,
) (BoxType, error) {
	boxType := BoxType{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		boxType.setName(name),
		boxType.setSides(length, width, height),
		boxType.setWeights(maxWeight, emptyWeight),
	); err != nil {
		return BoxType{}, err
	}

	return boxType, nil
}

// Validate ensures the box type was created through the constructor.
func (b BoxType) Validate() error {
	return b.guard.Validate(ErrBoxTypeIsNotConstructed)
}

// Name returns the catalog name of the box.
func (b BoxType) Name() string {
	return b.name
}

// Length returns the inner length in inches.
func (b BoxType) Length() float64 {
	return b.length
}

// Width returns the inner width in inches.
func (b BoxType) Width() float64 {
	return b.width
}

// Height returns the inner height in inches.
func (b BoxType) Height() float64 {
	return b.height
}

// MaxWeight returns the maximum gross weight, tare included.
func (b BoxType) MaxWeight() kernel.Weight {
	return b.maxWeight
}

// EmptyWeight returns the tare weight of the empty box.
func (b BoxType) EmptyWeight() kernel.Weight {
	return b.emptyWeight
}

// FloorArea returns the nominal footprint, length times width.
func (b BoxType) FloorArea() float64 {
	return b.length * b.width
}

// EffectiveWeightCapacity returns the item weight the box may accept for
// packing decisions: the available capacity above tare, derated by the
// weight fill factor.
func (b BoxType) EffectiveWeightCapacity() kernel.Weight {
	capacity := (b.maxWeight.Pounds() - b.emptyWeight.Pounds()) * WeightFillFactor
	w, _ := kernel.NewWeightFromPounds(capacity)
	return w
}

// EffectiveFloorArea returns the floor area usable for packing decisions,
// derated by the area fill factor.
func (b BoxType) EffectiveFloorArea() float64 {
	return b.FloorArea() * AreaFillFactor
}

func (b *BoxType) setName(name string) error {
	if name == "" {
		return ErrBoxNameIsRequired
	}

	b.name = name
	return nil
}

func (b *BoxType) setSides(length, width, height float64) error {
	for name, v := range map[string]float64{"length": length, "width": width, "height": height} {
		if v <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				name,
				fmt.Errorf("%v is not greater than 0", v),
			)
		}
	}

	b.length = length
	b.width = width
	b.height = height
	return nil
}

func (b *BoxType) setWeights(maxWeight, emptyWeight kernel.Weight) error {
	if maxWeight.LessThanOrEqual(emptyWeight) {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxWeight",
			fmt.Errorf("%s does not exceed tare weight %s", maxWeight, emptyWeight),
		)
	}

	b.maxWeight = maxWeight
	b.emptyWeight = emptyWeight
	return nil
}
