package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ewaste/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePickupCancellationJob *StalePickupCancellationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelStaleHandler commands.CancelStalePickupsCommandHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePickupCancellationJob: NewStalePickupCancellationJob(cancelStaleHandler, staleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePickupCancellationJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale pickup cancellation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePickupCancellationJob.Stop()
}
