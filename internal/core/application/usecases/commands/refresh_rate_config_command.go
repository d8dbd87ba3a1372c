package commands

import (
	"errors"

	"shiprates/internal/pkg/guard"
)

// RefreshRateConfigCommand triggers a reload of the rating configuration
// snapshot from persistent storage into the in-memory cache.
//
// Example:
//
//	cmd := NewRefreshRateConfigCommand()
//	handler := NewRefreshRateConfigCommandHandler(cache)
//
//	// Run periodically so operator edits reach quoting without a restart
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Config refresh failed: %v", err)
//	}
type RefreshRateConfigCommand struct {
	guard guard.ConstructorGuard
}

var ErrRefreshRateConfigCommandIsNotConstructed = errors.New(
	"RefreshRateConfigCommand must be created via NewRefreshRateConfigCommand constructor",
)

// NewRefreshRateConfigCommand creates a command to trigger a configuration
// reload. This is a parameterless command.
func NewRefreshRateConfigCommand() RefreshRateConfigCommand {
	return RefreshRateConfigCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshRateConfigCommandIsNotConstructed if validation fails.
func (c *RefreshRateConfigCommand) Validate() error {
	return c.guard.Validate(ErrRefreshRateConfigCommandIsNotConstructed)
}
