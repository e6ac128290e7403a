package commands

import (
	"context"
	"errors"
	"time"

	"ewaste/internal/pkg/errs"
)

// CancelStalePickupsCommandHandler cancels pending requests nobody claimed in time.
// Requests that get accepted while the batch runs lose the conditional write and
// are skipped rather than failing the whole batch.
type CancelStalePickupsCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewCancelStalePickupsCommandHandler creates a handler for stale request cleanup.
// Requires a PickupUoWFactory for transactional persistence.
func NewCancelStalePickupsCommandHandler(uowFactory PickupUoWFactory) CancelStalePickupsCommandHandler {
	return CancelStalePickupsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stale cleanup command.
// Retrieves all pending requests created before the staleness cutoff, cancels each
// one with a conditional write, and commits the batch in a single transaction.
// Returns the number of requests actually cancelled.
func (h *CancelStalePickupsCommandHandler) Handle(ctx context.Context, cmd CancelStalePickupsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pickupRepo := uow.PickupRequestRepository()
	cutoff := time.Now().UTC().Add(-cmd.OlderThan())

	stale, err := pickupRepo.GetAllPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, request := range stale {
		prev := request.Status()
		if err = request.Cancel(); err != nil {
			return 0, err
		}

		err = pickupRepo.UpdateWhenStatus(ctx, request, prev)
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			// Claimed between the read and the write; leave it to its new owner.
			continue
		}
		if err != nil {
			return 0, err
		}

		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
