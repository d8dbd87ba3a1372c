package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"shiprates/internal/adapters/out/cache"
	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/pricing"
	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	mu       sync.Mutex
	settings pricing.Settings
	err      error
	calls    int
}

func (s *stubRepository) Load(_ context.Context) (pricing.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.settings, s.err
}

func newTestSettings(t *testing.T, homeCountry string) pricing.Settings {
	t.Helper()
	shipper, err := cart.NewAddress("US", "33172", "FL", "Miami")
	require.NoError(t, err)
	fee, err := kernel.NewMoney(3000)
	require.NoError(t, err)

	settings, err := pricing.NewSettings(
		homeCountry,
		nil,
		nil,
		pricing.NewHandlingFeeTable(fee, fee),
		pricing.NewLeadTimeTable(1, nil),
		fee,
		[]string{"FEDEX_GROUND"},
		shipper,
	)
	require.NoError(t, err)
	return settings
}

func TestSettingsCache(t *testing.T) {
	ctx := t.Context()

	t.Run("should error before first refresh", func(t *testing.T) {
		c := cache.NewSettingsCache(&stubRepository{})
		_, err := c.Settings(ctx)
		require.ErrorIs(t, err, errs.ErrInvalidConfiguration)
	})

	t.Run("should serve snapshot after refresh", func(t *testing.T) {
		repo := &stubRepository{settings: newTestSettings(t, "US")}
		c := cache.NewSettingsCache(repo)
		require.NoError(t, c.Refresh(ctx))

		settings, err := c.Settings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "US", settings.HomeCountry())
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("should keep previous snapshot when refresh fails", func(t *testing.T) {
		repo := &stubRepository{settings: newTestSettings(t, "US")}
		c := cache.NewSettingsCache(repo)
		require.NoError(t, c.Refresh(ctx))

		repo.mu.Lock()
		repo.err = errors.New("db down")
		repo.mu.Unlock()
		require.Error(t, c.Refresh(ctx))

		settings, err := c.Settings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "US", settings.HomeCountry())
	})

	t.Run("should not serve partial snapshot during concurrent refresh", func(t *testing.T) {
		repo := &stubRepository{settings: newTestSettings(t, "US")}
		c := cache.NewSettingsCache(repo)
		require.NoError(t, c.Refresh(ctx))

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = c.Refresh(ctx)
			}()
			go func() {
				defer wg.Done()
				settings, err := c.Settings(ctx)
				assert.NoError(t, err)
				assert.Equal(t, "US", settings.HomeCountry())
			}()
		}
		wg.Wait()
	})
}
