package packing

import (
	"shiprates/internal/core/domain/model/kernel"
)

// PackedBox is a mutable accumulator bound to one BoxType. It tracks the
// cumulative item weight and floor area placed into the box; the box type is
// fixed at creation and never resized.
//
// A PackedBox is created through the packer only; it has no independent
// constructor because opening a box is a packing decision, not a caller one.
type PackedBox struct {
	boxType    BoxType
	itemWeight kernel.Weight
	usedArea   float64
	oversize   bool
}

func newPackedBox(boxType BoxType) *PackedBox {
	return &PackedBox{boxType: boxType}
}

// BoxType returns the catalog box this accumulator is bound to.
func (p *PackedBox) BoxType() BoxType {
	return p.boxType
}

// ItemWeight returns the cumulative weight of the items placed so far,
// excluding tare.
func (p *PackedBox) ItemWeight() kernel.Weight {
	return p.itemWeight
}

// TotalWeight returns the gross weight: items plus the box's tare.
func (p *PackedBox) TotalWeight() kernel.Weight {
	return p.itemWeight.Add(p.boxType.EmptyWeight())
}

// UsedFloorArea returns the floor area consumed by placed items.
func (p *PackedBox) UsedFloorArea() float64 {
	return p.usedArea
}

// Oversize reports whether this box holds a best-effort placement that
// violates the declared box envelope. Such boxes still ship, but the declared
// weight or dimensions cannot be trusted by the carrier contract.
func (p *PackedBox) Oversize() bool {
	return p.oversize
}

// canAccept reports whether the entry fits within the remaining effective
// capacity. Weight is always checked; floor area and height apply only to
// entries with a complete set of dimensions.
func (p *PackedBox) canAccept(e packEntry) bool {
	remainingWeight := p.boxType.EffectiveWeightCapacity().Pounds() - p.itemWeight.Pounds()
	if e.weight.Pounds() > remainingWeight {
		return false
	}

	if e.dims == nil {
		return true
	}

	remainingArea := p.boxType.EffectiveFloorArea() - p.usedArea
	return e.dims.FloorArea() <= remainingArea && e.dims.Height() <= p.boxType.Height()
}

// place adds the entry to the box unconditionally. Callers decide fit via
// canAccept; best-effort placements skip that check and mark the box oversize.
func (p *PackedBox) place(e packEntry) {
	p.itemWeight = p.itemWeight.Add(e.weight)
	if e.dims != nil {
		p.usedArea += e.dims.FloorArea()
	}
}
