package pricing_test

import (
	"testing"

	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cents(t *testing.T, v int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(v)
	require.NoError(t, err)
	return m
}

func TestLeadTimeTable(t *testing.T) {
	table := pricing.NewLeadTimeTable(1, map[string]int{"LONG": 14})

	t.Run("known sku uses its own lead time", func(t *testing.T) {
		assert.Equal(t, 14, table.DaysFor("LONG"))
	})

	t.Run("unknown sku falls back to default", func(t *testing.T) {
		assert.Equal(t, 1, table.DaysFor("UNKNOWN"))
	})

	t.Run("negative default is clamped to zero", func(t *testing.T) {
		clamped := pricing.NewLeadTimeTable(-3, nil)
		assert.Equal(t, 0, clamped.Default())
	})
}

func TestHandlingFeeTable(t *testing.T) {
	table := pricing.NewHandlingFeeTable(cents(t, 3000), cents(t, 4500))

	t.Run("ground services pay the ground fee", func(t *testing.T) {
		assert.Equal(t, int64(3000), table.FeeFor("FEDEX_GROUND").Cents())
		assert.Equal(t, int64(3000), table.FeeFor("GROUND_HOME_DELIVERY").Cents())
	})

	t.Run("all other service classes pay the air fee", func(t *testing.T) {
		assert.Equal(t, int64(4500), table.FeeFor("PRIORITY_OVERNIGHT").Cents())
		assert.Equal(t, int64(4500), table.FeeFor("FEDEX_2_DAY").Cents())
	})
}

func TestNewSettings(t *testing.T) {
	shipper, err := cart.NewAddress("US", "33172", "FL", "Miami")
	require.NoError(t, err)

	settings, err := pricing.NewSettings(
		"us",
		[]string{"33172-0000", " 331 99 "},
		nil,
		pricing.NewHandlingFeeTable(cents(t, 3000), cents(t, 4500)),
		pricing.NewLeadTimeTable(1, nil),
		cents(t, 3000),
		[]string{"FEDEX_GROUND", ""},
		shipper,
	)
	require.NoError(t, err)

	t.Run("home country is normalized", func(t *testing.T) {
		assert.Equal(t, "US", settings.HomeCountry())
	})

	t.Run("local zips are normalized before membership checks", func(t *testing.T) {
		zip, zipErr := cart.NewPostalCode("33172-1234")
		require.NoError(t, zipErr)
		assert.True(t, settings.IsLocalZip(zip))

		other, zipErr := cart.NewPostalCode("90210")
		require.NoError(t, zipErr)
		assert.False(t, settings.IsLocalZip(other))
	})

	t.Run("empty service codes are dropped from the allow-list", func(t *testing.T) {
		assert.True(t, settings.IsAllowedService("FEDEX_GROUND"))
		assert.False(t, settings.IsAllowedService(""))
		assert.False(t, settings.IsAllowedService("SMART_POST"))
	})

	t.Run("unconstructed shipper address is rejected", func(t *testing.T) {
		var invalid cart.Address
		_, settingsErr := pricing.NewSettings(
			"US", nil, nil,
			pricing.HandlingFeeTable{}, pricing.LeadTimeTable{},
			kernel.Zero(), nil, invalid,
		)
		require.ErrorIs(t, settingsErr, cart.ErrAddressIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var zero pricing.Settings
		require.ErrorIs(t, zero.Validate(), pricing.ErrSettingsAreNotConstructed)
	})
}
