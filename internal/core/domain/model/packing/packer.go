package packing

import (
	"fmt"
	"sort"

	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
)

// ErrNoBoxTypesConfigured is returned by Pack when at least one item must be
// packed but the box catalog is empty. This is fatal: the packer never
// fabricates a box.
var ErrNoBoxTypesConfigured = errs.NewInvalidConfigurationErrorWithCause(
	"boxTypes",
	fmt.Errorf("no box types configured"),
)

// packEntry is one unit of one cart line, flattened for packing. Entries
// without a complete set of dimensions carry a nil dims and a zero footprint.
type packEntry struct {
	weight kernel.Weight
	dims   *cart.Dimensions
}

func (e packEntry) floorArea() float64 {
	if e.dims == nil {
		return 0
	}
	return e.dims.FloorArea()
}

// Pack assigns the shippable units of the given items to boxes from the
// catalog using first-fit decreasing by footprint, weight descending as the
// tiebreak. Items that require no shipping are skipped. An empty item set
// returns an empty result regardless of catalog; a non-empty item set with an
// empty catalog fails with ErrNoBoxTypesConfigured.
//
// A unit that fits no catalog box even alone is placed best-effort into the
// largest-footprint box, which is then marked oversize.
func Pack(items []cart.Item, catalog []BoxType) ([]*PackedBox, error) {
	entries := expand(items)
	if len(entries) == 0 {
		return []*PackedBox{}, nil
	}

	if len(catalog) == 0 {
		return nil, ErrNoBoxTypesConfigured
	}

	for _, boxType := range catalog {
		if err := boxType.Validate(); err != nil {
			return nil, err
		}
	}

	// Largest footprint first; dimension-less entries sort last with their
	// zero floor area, among which weight breaks ties.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].floorArea() != entries[j].floorArea() {
			return entries[i].floorArea() > entries[j].floorArea()
		}
		return entries[i].weight.Pounds() > entries[j].weight.Pounds()
	})

	byFootprint := make([]BoxType, len(catalog))
	copy(byFootprint, catalog)
	sort.SliceStable(byFootprint, func(i, j int) bool {
		return byFootprint[i].FloorArea() < byFootprint[j].FloorArea()
	})

	boxes := make([]*PackedBox, 0, 1)
	for _, entry := range entries {
		if !placeInExisting(boxes, entry) {
			boxes = append(boxes, openBoxFor(entry, byFootprint))
		}
	}

	return boxes, nil
}

// expand flattens cart lines into quantity unit-sized entries.
func expand(items []cart.Item) []packEntry {
	var entries []packEntry
	for _, item := range items {
		if !item.RequiresShipping() {
			continue
		}
		for range item.Quantity() {
			entries = append(entries, packEntry{
				weight: item.UnitWeight(),
				dims:   item.Dimensions(),
			})
		}
	}
	return entries
}

func placeInExisting(boxes []*PackedBox, entry packEntry) bool {
	for _, box := range boxes {
		if box.canAccept(entry) {
			box.place(entry)
			return true
		}
	}
	return false
}

// openBoxFor opens the smallest-footprint box that can take the entry alone.
// When none qualifies the largest-footprint box is used regardless of fit and
// the placement is flagged oversize.
func openBoxFor(entry packEntry, byFootprint []BoxType) *PackedBox {
	for _, boxType := range byFootprint {
		candidate := newPackedBox(boxType)
		if candidate.canAccept(entry) {
			candidate.place(entry)
			return candidate
		}
	}

	fallback := newPackedBox(byFootprint[len(byFootprint)-1])
	fallback.place(entry)
	fallback.oversize = true
	return fallback
}
