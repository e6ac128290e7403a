package jobs

import (
	"context"
	"log/slog"
	"time"

	"ewaste/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StalePickupCancellationJob periodically cancels pending pickup requests that
// no agent has claimed within the configured retention window. Runs hourly.
type StalePickupCancellationJob struct {
	handler   commands.CancelStalePickupsCommandHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStalePickupCancellationJob creates a job that sweeps unclaimed pickups
// older than the given duration.
func NewStalePickupCancellationJob(
	handler commands.CancelStalePickupsCommandHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *StalePickupCancellationJob {
	return &StalePickupCancellationJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_pickup_cancellation_job"),
	}
}

// Start begins the stale pickup sweep, running at the top of every hour.
func (j *StalePickupCancellationJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStalePickupsCommand(j.olderThan)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale pickup cancellation job misconfigured", "error", cmdErr)
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale pickup cancellation job failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale pickup requests", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pickup cancellation job started (running hourly)")
	return nil
}

// Stop stops the stale pickup sweep.
func (j *StalePickupCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pickup cancellation job stopped")
}
