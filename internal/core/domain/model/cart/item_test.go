package cart_test

import (
	"testing"

	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, sku string, quantity int, grams float64, props map[string]string) cart.Item {
	t.Helper()
	item, err := cart.NewItem(sku, sku, quantity, grams, kernel.Zero(), true, props)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create item and normalize weight to pounds", func(t *testing.T) {
		item, err := cart.NewItem("WIDGET", "Widget", 2, 1000, kernel.Zero(), true, nil)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "WIDGET", item.Sku())
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 2.20462, item.UnitWeight().Pounds(), 0.0001)
		assert.InDelta(t, 4.40925, item.TotalWeight().Pounds(), 0.0001)
	})

	t.Run("should fail with empty sku", func(t *testing.T) {
		_, err := cart.NewItem("", "Widget", 1, 100, kernel.Zero(), true, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := cart.NewItem("WIDGET", "Widget", 0, 100, kernel.Zero(), true, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := cart.NewItem("", "Widget", -1, -5, kernel.Zero(), true, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sku")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "grams")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item cart.Item

		require.ErrorIs(t, item.Validate(), cart.ErrItemIsNotConstructed)
	})
}

func TestItemTotalWeight(t *testing.T) {
	t.Run("non-shippable item contributes no weight", func(t *testing.T) {
		item, err := cart.NewItem("GIFT-CARD", "Gift Card", 3, 500, kernel.Zero(), false, nil)

		require.NoError(t, err)
		assert.True(t, item.TotalWeight().IsZero())
	})
}

func TestItemProperties(t *testing.T) {
	t.Run("should parse a recognized customer type signal", func(t *testing.T) {
		item := newTestItem(t, "A", 1, 100, map[string]string{
			"customer_type": "international_military",
		})

		ct, ok := item.CustomerType()
		assert.True(t, ok)
		assert.Equal(t, cart.InternationalMilitary, ct)
	})

	t.Run("should ignore an unrecognized customer type value", func(t *testing.T) {
		item := newTestItem(t, "A", 1, 100, map[string]string{
			"customer_type": "wholesale",
		})

		_, ok := item.CustomerType()
		assert.False(t, ok)
	})

	t.Run("should parse complete dimension overrides", func(t *testing.T) {
		item := newTestItem(t, "A", 1, 100, map[string]string{
			"length": "12", "width": "10", "height": "4.5",
		})

		dims := item.Dimensions()
		require.NotNil(t, dims)
		assert.InDelta(t, 120.0, dims.FloorArea(), 1e-9)
		assert.InDelta(t, 4.5, dims.Height(), 1e-9)
	})

	t.Run("should stay dimension-less when a side is missing", func(t *testing.T) {
		item := newTestItem(t, "A", 1, 100, map[string]string{
			"length": "12", "width": "10",
		})

		assert.Nil(t, item.Dimensions())
	})

	t.Run("should stay dimension-less when a side is non-positive", func(t *testing.T) {
		item := newTestItem(t, "A", 1, 100, map[string]string{
			"length": "12", "width": "0", "height": "4",
		})

		assert.Nil(t, item.Dimensions())
	})

	t.Run("should stay dimension-less when a side is not numeric", func(t *testing.T) {
		item := newTestItem(t, "A", 1, 100, map[string]string{
			"length": "12", "width": "ten", "height": "4",
		})

		assert.Nil(t, item.Dimensions())
	})
}
