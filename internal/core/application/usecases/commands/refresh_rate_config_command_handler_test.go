package commands_test

import (
	"context"
	"errors"
	"testing"

	"shiprates/internal/core/application/usecases/commands"
	"shiprates/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSettingsCache struct{ mock.Mock }

func (m *MockSettingsCache) Settings(_ context.Context) (pricing.Settings, error) {
	return pricing.Settings{}, errors.New("not implemented in mock")
}

func (m *MockSettingsCache) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestRefreshRateConfigCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshRateConfigCommand()

	cache := new(MockSettingsCache)
	cache.On("Refresh", ctx).Return(nil).Once()

	h := commands.NewRefreshRateConfigCommandHandler(cache)
	require.NoError(t, h.Handle(ctx, cmd))
	cache.AssertExpectations(t)
}

func TestRefreshRateConfigCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RefreshRateConfigCommand{} // not constructed properly

	h := commands.NewRefreshRateConfigCommandHandler(new(MockSettingsCache))
	require.Error(t, h.Handle(ctx, cmd))
}

func TestRefreshRateConfigCommandHandler_Handle_RefreshError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshRateConfigCommand()

	cache := new(MockSettingsCache)
	cache.On("Refresh", ctx).Return(errors.New("db down")).Once()

	h := commands.NewRefreshRateConfigCommandHandler(cache)
	require.Error(t, h.Handle(ctx, cmd))
	cache.AssertExpectations(t)
}
