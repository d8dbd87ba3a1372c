// Package jobs provides scheduled background tasks for the shipping-rates
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the rating service.
//
// # Available Jobs
//
// 1. ConfigRefreshJob - Reloads the rating configuration snapshot from
// PostgreSQL into the in-memory cache so operator edits reach quoting
// without a restart.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh job uses the cron expression "0 */5 * * * *" and runs every
// five minutes. Configuration is reference data edited by operators, not a
// real-time feed, so a short cache staleness window is acceptable.
//
// # Error Handling
//
// A failed refresh is logged and the previous snapshot keeps serving quotes;
// the job retries on its next scheduled run.
package jobs
