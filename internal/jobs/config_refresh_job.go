package jobs

import (
	"context"
	"log/slog"

	"shiprates/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ConfigRefreshJob manages the scheduled reload of the rating configuration.
// Runs every five minutes so operator edits reach quoting without a restart.
type ConfigRefreshJob struct {
	handler commands.RefreshRateConfigCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewConfigRefreshJob creates a new job for refreshing the configuration cache.
func NewConfigRefreshJob(handler commands.RefreshRateConfigCommandHandler, logger *slog.Logger) *ConfigRefreshJob {
	return &ConfigRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "config_refresh_job"),
	}
}

// Start begins the configuration refresh job on a five-minute schedule.
func (j *ConfigRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRefreshRateConfigCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// The previous snapshot keeps serving; the next run retries.
			j.logger.ErrorContext(ctx, "Config refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Config refresh job started (running every five minutes)")
	return nil
}

// Stop stops the configuration refresh job.
func (j *ConfigRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Config refresh job stopped")
}
