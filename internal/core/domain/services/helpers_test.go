package services_test

import (
	"testing"

	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/require"
)

func cents(t *testing.T, v int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(v)
	require.NoError(t, err)
	return m
}

func newItem(t *testing.T, sku string, props map[string]string) cart.Item {
	t.Helper()
	item, err := cart.NewItem(sku, sku, 1, 1000, kernel.Zero(), true, props)
	require.NoError(t, err)
	return item
}

func newCart(t *testing.T, country, postal string, items ...cart.Item) cart.Cart {
	t.Helper()
	address, err := cart.NewAddress(country, postal, "", "")
	require.NoError(t, err)
	c, err := cart.NewCart(address, items, "USD", "en")
	require.NoError(t, err)
	return c
}

func newSettings(t *testing.T, localZips []string, leadTimes pricing.LeadTimeTable) pricing.Settings {
	t.Helper()
	shipper, err := cart.NewAddress("US", "33172", "FL", "Miami")
	require.NoError(t, err)

	settings, err := pricing.NewSettings(
		"US",
		localZips,
		nil,
		pricing.NewHandlingFeeTable(cents(t, 3000), cents(t, 4500)),
		leadTimes,
		cents(t, 3000),
		[]string{"FEDEX_GROUND", "GROUND_HOME_DELIVERY", "FEDEX_2_DAY", "PRIORITY_OVERNIGHT"},
		shipper,
	)
	require.NoError(t, err)
	return settings
}
