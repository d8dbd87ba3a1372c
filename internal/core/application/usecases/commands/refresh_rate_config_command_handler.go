package commands

import (
	"context"
	"fmt"

	"shiprates/internal/core/ports"
)

// RefreshRateConfigCommandHandler reloads the cached configuration snapshot.
// A failed reload leaves the previous snapshot serving quotes; the error is
// surfaced so the scheduler can log it.
type RefreshRateConfigCommandHandler struct {
	cache ports.SettingsCache
}

// NewRefreshRateConfigCommandHandler creates a handler over the settings cache.
func NewRefreshRateConfigCommandHandler(cache ports.SettingsCache) RefreshRateConfigCommandHandler {
	return RefreshRateConfigCommandHandler{
		cache: cache,
	}
}

// Handle processes the refresh command.
func (h RefreshRateConfigCommandHandler) Handle(ctx context.Context, cmd RefreshRateConfigCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.cache.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing rate configuration: %w", err)
	}

	return nil
}
