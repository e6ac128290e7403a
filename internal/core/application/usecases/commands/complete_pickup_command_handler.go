package commands

import (
	"context"

	"ewaste/internal/core/domain/model/pickup"
)

// CompletePickupCommandHandler handles the Accepted→Completed transition.
// Only the agent that owns the claim may complete the pickup; any other agent
// receives an ActionForbiddenError from the domain layer.
type CompletePickupCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewCompletePickupCommandHandler creates a handler for pickup completion operations.
// Requires a PickupUoWFactory for transactional persistence.
func NewCompletePickupCommandHandler(uowFactory PickupUoWFactory) CompletePickupCommandHandler {
	return CompletePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Loads the request, applies the domain transition and persists it conditionally
// on the record still being in its pre-read status. Repeating the command for the
// agent that already completed the pickup is a no-op returning the unchanged request.
func (h *CompletePickupCommandHandler) Handle(
	ctx context.Context,
	cmd CompletePickupCommand,
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
	if err = request.Complete(cmd.AgentID()); err != nil {
		return nil, err
	}

	// Repeated complete by the owning agent: nothing changed, nothing to write.
	if prev == pickup.Completed {
		return request, nil
	}

	if err = pickupRepo.UpdateWhenStatus(ctx, request, prev); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}
