package ports

import (
	"context"

	"shiprates/internal/core/domain/model/pricing"
)

// SettingsRepository loads the rating configuration from persistent storage.
// The configuration is read-only from the core's point of view; writes happen
// through operator tooling outside this service.
type SettingsRepository interface {
	// Load reads the complete configuration and returns it as one immutable
	// snapshot. Partial configuration is an error, never a partial snapshot.
	Load(ctx context.Context) (pricing.Settings, error)
}

// SettingsProvider hands out the configuration snapshot quotes run against.
// Implementations may cache; a snapshot, once returned, is never mutated.
type SettingsProvider interface {
	Settings(ctx context.Context) (pricing.Settings, error)
}

// SettingsCache is a SettingsProvider whose snapshot can be refreshed
// explicitly, typically by a scheduled job. The cache is an explicitly owned
// object injected where needed, never ambient global state.
type SettingsCache interface {
	SettingsProvider

	// Refresh reloads the snapshot from the underlying repository. On error
	// the previous snapshot, if any, stays in place.
	Refresh(ctx context.Context) error
}
