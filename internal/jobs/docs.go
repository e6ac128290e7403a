// Package jobs provides scheduled background tasks for the pickup marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the marketplace needs.
//
// # Available Jobs
//
// 1. StalePickupCancellationJob - Runs hourly to cancel pending pickup requests
// that no agent claimed within the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleHandler, 14*24*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Requests claimed between the sweep's read and write are skipped, not failed
// - Job errors are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
