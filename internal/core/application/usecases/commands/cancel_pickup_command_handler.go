package commands

import (
	"context"

	"ewaste/internal/core/domain/model/pickup"
)

// CancelPickupCommandHandler handles administrative cancellation of pickup requests.
// Cancelling an accepted request releases the agent assignment so the record never
// carries an agent in a non-active state.
type CancelPickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewCancelPickupCommandHandler creates a handler for pickup cancellation operations.
// Requires a PickupUoWFactory for transactional persistence.
func NewCancelPickupCommandHandler(uowFactory PickupUoWFactory) CancelPickupCommandHandler {
	return CancelPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Loads the request, applies the domain transition and persists it conditionally
// on the record still being in its pre-read status. Cancelling a terminal request
// fails with pickup.ErrStatusIsTerminal.
func (h *CancelPickupCommandHandler) Handle(
	ctx context.Context,
	cmd CancelPickupCommand,
) (*pickup.PickupRequest, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pickupRepo := uow.PickupRequestRepository()
	request, err := pickupRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	prev := request.Status()
	if err = request.Cancel(); err != nil {
		return nil, err
	}

	if err = pickupRepo.UpdateWhenStatus(ctx, request, prev); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}
