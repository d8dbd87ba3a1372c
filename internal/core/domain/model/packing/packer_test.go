package packing_test

import (
	"strconv"
	"testing"

	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/packing"
	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPackItem(t *testing.T, sku string, quantity int, grams float64, props map[string]string) cart.Item {
	t.Helper()
	item, err := cart.NewItem(sku, sku, quantity, grams, kernel.Zero(), true, props)
	require.NoError(t, err)
	return item
}

func dimProps(length, width, height float64) map[string]string {
	return map[string]string{
		"length": strconv.FormatFloat(length, 'f', -1, 64),
		"width":  strconv.FormatFloat(width, 'f', -1, 64),
		"height": strconv.FormatFloat(height, 'f', -1, 64),
	}
}

func TestPackEdgeCases(t *testing.T) {
	catalog := []packing.BoxType{newTestBoxType(t, "MEDIUM", 12, 12, 8, 20, 1)}

	t.Run("empty item set returns empty result regardless of catalog", func(t *testing.T) {
		boxes, err := packing.Pack(nil, catalog)

		require.NoError(t, err)
		assert.Empty(t, boxes)

		boxes, err = packing.Pack(nil, nil)

		require.NoError(t, err)
		assert.Empty(t, boxes)
	})

	t.Run("non-shippable items behave like an empty set", func(t *testing.T) {
		digital, err := cart.NewItem("EBOOK", "E-Book", 2, 100, kernel.Zero(), false, nil)
		require.NoError(t, err)

		boxes, err := packing.Pack([]cart.Item{digital}, nil)

		require.NoError(t, err)
		assert.Empty(t, boxes)
	})

	t.Run("empty catalog with shippable items fails with invalid configuration", func(t *testing.T) {
		items := []cart.Item{newPackItem(t, "WIDGET", 1, 1000, nil)}

		_, err := packing.Pack(items, nil)

		require.ErrorIs(t, err, errs.ErrInvalidConfiguration)
	})

	t.Run("unconstructed box type in catalog is rejected", func(t *testing.T) {
		var zero packing.BoxType
		items := []cart.Item{newPackItem(t, "WIDGET", 1, 1000, nil)}

		_, err := packing.Pack(items, []packing.BoxType{zero})

		require.ErrorIs(t, err, packing.ErrBoxTypeIsNotConstructed)
	})
}

func TestPackSingleItem(t *testing.T) {
	t.Run("one 1000 g item lands in the smallest box that covers it", func(t *testing.T) {
		catalog := []packing.BoxType{newTestBoxType(t, "MEDIUM", 12, 12, 8, 20, 1)}
		items := []cart.Item{newPackItem(t, "WIDGET", 1, 1000, nil)}

		boxes, err := packing.Pack(items, catalog)

		require.NoError(t, err)
		require.Len(t, boxes, 1)
		assert.Equal(t, "MEDIUM", boxes[0].BoxType().Name())
		assert.InDelta(t, 2.20462, boxes[0].ItemWeight().Pounds(), 0.0001)
		assert.InDelta(t, 3.20462, boxes[0].TotalWeight().Pounds(), 0.0001)
		assert.False(t, boxes[0].Oversize())
	})

	t.Run("smallest footprint box that fits is preferred over larger ones", func(t *testing.T) {
		catalog := []packing.BoxType{
			newTestBoxType(t, "LARGE", 24, 18, 12, 50, 2),
			newTestBoxType(t, "SMALL", 8, 6, 4, 5, 0.5),
		}
		items := []cart.Item{newPackItem(t, "TRINKET", 1, 500, dimProps(4, 3, 2))}

		boxes, err := packing.Pack(items, catalog)

		require.NoError(t, err)
		require.Len(t, boxes, 1)
		assert.Equal(t, "SMALL", boxes[0].BoxType().Name())
	})
}

func TestPackConservationOfMass(t *testing.T) {
	catalog := []packing.BoxType{
		newTestBoxType(t, "SMALL", 8, 6, 4, 5, 0.5),
		newTestBoxType(t, "LARGE", 24, 18, 12, 50, 2),
	}
	items := []cart.Item{
		newPackItem(t, "HEAVY", 3, 4000, dimProps(10, 8, 6)),
		newPackItem(t, "LIGHT", 5, 250, nil),
		newPackItem(t, "FLAT", 2, 1200, dimProps(20, 15, 1)),
	}

	boxes, err := packing.Pack(items, catalog)

	require.NoError(t, err)
	require.NotEmpty(t, boxes)

	var cartTotal, packedTotal float64
	for _, item := range items {
		cartTotal += item.TotalWeight().Pounds()
	}
	for _, box := range boxes {
		packedTotal += box.ItemWeight().Pounds()
	}
	assert.InDelta(t, cartTotal, packedTotal, 1e-9)
}

func TestPackWeightConstraint(t *testing.T) {
	t.Run("entries beyond effective weight capacity open additional boxes", func(t *testing.T) {
		// Effective capacity (10-1)*0.9 = 8.1 lb; three 4 lb entries need two boxes.
		catalog := []packing.BoxType{newTestBoxType(t, "BIN", 12, 12, 8, 10, 1)}
		fourPounds := 4 * kernel.GramsPerPound
		items := []cart.Item{newPackItem(t, "BRICK", 3, fourPounds, nil)}

		boxes, err := packing.Pack(items, catalog)

		require.NoError(t, err)
		require.Len(t, boxes, 2)
		assert.InDelta(t, 8.0, boxes[0].ItemWeight().Pounds(), 1e-9)
		assert.InDelta(t, 4.0, boxes[1].ItemWeight().Pounds(), 1e-9)
	})
}

func TestPackAreaConstraint(t *testing.T) {
	t.Run("floor area exhaustion opens a new box even with weight to spare", func(t *testing.T) {
		// Effective area 12*12*0.85 = 122.4; two 80 sq in footprints cannot share.
		catalog := []packing.BoxType{newTestBoxType(t, "BIN", 12, 12, 8, 100, 1)}
		items := []cart.Item{newPackItem(t, "TRAY", 2, 500, dimProps(10, 8, 2))}

		boxes, err := packing.Pack(items, catalog)

		require.NoError(t, err)
		assert.Len(t, boxes, 2)
	})

	t.Run("dimension-less entries are validated on weight alone", func(t *testing.T) {
		catalog := []packing.BoxType{newTestBoxType(t, "BIN", 12, 12, 8, 100, 1)}
		items := []cart.Item{
			newPackItem(t, "TRAY", 1, 500, dimProps(10, 8, 2)),
			newPackItem(t, "SOFT", 10, 500, nil),
		}

		boxes, err := packing.Pack(items, catalog)

		require.NoError(t, err)
		assert.Len(t, boxes, 1)
	})

	t.Run("entry taller than the box opens a different box", func(t *testing.T) {
		catalog := []packing.BoxType{
			newTestBoxType(t, "SHALLOW", 20, 20, 3, 50, 1),
			newTestBoxType(t, "DEEP", 21, 21, 12, 50, 1),
		}
		items := []cart.Item{newPackItem(t, "TALL", 1, 1000, dimProps(6, 6, 10))}

		boxes, err := packing.Pack(items, catalog)

		require.NoError(t, err)
		require.Len(t, boxes, 1)
		assert.Equal(t, "DEEP", boxes[0].BoxType().Name())
	})
}

func TestPackFirstFitDecreasing(t *testing.T) {
	t.Run("largest footprints are placed first", func(t *testing.T) {
		// A big footprint placed first claims the first box; small entries
		// backfill around it instead of stranding the big one.
		catalog := []packing.BoxType{newTestBoxType(t, "BIN", 12, 12, 8, 100, 1)}
		items := []cart.Item{
			newPackItem(t, "SMALL", 4, 200, dimProps(4, 4, 1)),
			newPackItem(t, "BIG", 1, 500, dimProps(10, 5, 1)),
		}

		boxes, err := packing.Pack(items, catalog)

		require.NoError(t, err)
		require.Len(t, boxes, 1)
		assert.InDelta(t, 50+4*16, boxes[0].UsedFloorArea(), 1e-9)
	})
}

func TestPackOversizeFallback(t *testing.T) {
	t.Run("item heavier than every box is still placed in the largest box", func(t *testing.T) {
		catalog := []packing.BoxType{
			newTestBoxType(t, "SMALL", 8, 6, 4, 5, 0.5),
			newTestBoxType(t, "LARGE", 24, 18, 12, 50, 2),
		}
		hundredPounds := 100 * kernel.GramsPerPound
		items := []cart.Item{newPackItem(t, "ANVIL", 1, hundredPounds, nil)}

		boxes, err := packing.Pack(items, catalog)

		require.NoError(t, err)
		require.Len(t, boxes, 1)
		assert.Equal(t, "LARGE", boxes[0].BoxType().Name())
		assert.True(t, boxes[0].Oversize())
		assert.InDelta(t, 100.0, boxes[0].ItemWeight().Pounds(), 1e-6)
	})

	t.Run("item with an oversized footprint is still placed", func(t *testing.T) {
		catalog := []packing.BoxType{newTestBoxType(t, "BIN", 12, 12, 8, 100, 1)}
		items := []cart.Item{newPackItem(t, "SHEET", 1, 1000, dimProps(30, 30, 1))}

		boxes, err := packing.Pack(items, catalog)

		require.NoError(t, err)
		require.Len(t, boxes, 1)
		assert.True(t, boxes[0].Oversize())
	})
}
