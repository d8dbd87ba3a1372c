// Package packing implements the box catalog and the first-fit-decreasing
// bin packer that maps a cart's shippable items onto physical boxes.
//
// Packing decisions never use a box's nominal limits directly: weight
// capacity is derated to 90% and floor area to 85% (the effective capacity)
// so a box that "fits" on paper is not over-promised. Weight is always a hard
// constraint; floor area and height apply only to entries that carry a
// complete set of dimensions.
//
// A single item that fits no catalog box at all is still placed, best-effort,
// into the largest-footprint box; the resulting PackedBox reports
// Oversize() true so callers can surface the envelope violation instead of
// passing it silently.
package packing
