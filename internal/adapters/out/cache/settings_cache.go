// Package cache holds the in-memory configuration snapshot that quotes run
// against. The cache is loaded once at startup and refreshed on a schedule;
// quoting never touches the database directly.
package cache

import (
	"context"
	"sync"

	"shiprates/internal/core/domain/model/pricing"
	"shiprates/internal/core/ports"
	"shiprates/internal/pkg/errs"
)

// ErrSettingsNotLoaded indicates no snapshot has been loaded yet. Callers see
// it only if the first Refresh failed and a quote arrived before a retry.
var ErrSettingsNotLoaded = errs.NewInvalidConfigurationError("settings snapshot not loaded")

// SettingsCache is a concurrency-safe snapshot holder over a
// SettingsRepository. Refresh replaces the snapshot atomically; on a failed
// reload the previous snapshot keeps serving.
type SettingsCache struct {
	repository ports.SettingsRepository

	mu       sync.RWMutex
	snapshot pricing.Settings
	loaded   bool
}

// NewSettingsCache creates an empty cache over the repository. Call Refresh
// before serving quotes.
func NewSettingsCache(repository ports.SettingsRepository) *SettingsCache {
	return &SettingsCache{
		repository: repository,
	}
}

// Settings returns the current snapshot.
func (c *SettingsCache) Settings(_ context.Context) (pricing.Settings, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return pricing.Settings{}, ErrSettingsNotLoaded
	}

	return c.snapshot, nil
}

// Refresh reloads the snapshot from the repository. On error the previous
// snapshot, if any, stays in place.
func (c *SettingsCache) Refresh(ctx context.Context) error {
	snapshot, err := c.repository.Load(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.snapshot = snapshot
	c.loaded = true
	c.mu.Unlock()

	return nil
}
