package commands_test

import (
	"testing"

	"shiprates/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewRefreshRateConfigCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd := commands.NewRefreshRateConfigCommand()
		require.NoError(t, cmd.Validate())
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var cmd commands.RefreshRateConfigCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRefreshRateConfigCommandIsNotConstructed)
	})
}
