package commands

import (
	"context"

	"ewaste/internal/core/domain/model/pickup"
)

// AcceptPickupCommandHandler orchestrates the claim of a pending pickup request.
// Verifies the agent may work, applies the domain transition and persists it with
// an optimistic concurrency check so that two racing agents produce exactly one winner.
//
// Example:
//
//	handler := NewAcceptPickupCommandHandler(uowFactory)
//	cmd, _ := NewAcceptPickupCommand(requestID, agentID)
//	request, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConcurrencyConflict):
//	    log.Println("request already claimed")
//	case err != nil:
//	    log.Printf("accept failed: %v", err)
//	default:
//	    log.Printf("request %s accepted", request.ID())
//	}
type AcceptPickupCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptPickupCommandHandler creates a handler for pickup claim operations.
// Requires a UoWFactory because the handler reads both agent and pickup aggregates.
func NewAcceptPickupCommandHandler(uowFactory UoWFactory) AcceptPickupCommandHandler {
	return AcceptPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command.
// Loads the agent and the request, applies the Pending→Accepted transition and
// writes it conditionally on the request still being unclaimed. Repeating the
// command for the same agent is a no-op returning the unchanged request.
func (h *AcceptPickupCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptPickupCommand,
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

	claimant, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}

	if err = claimant.ValidateCanWork(); err != nil {
		return nil, err
	}

	pickupRepo := uow.PickupRequestRepository()
	request, err := pickupRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	prev := request.Status()
	if err = request.Accept(cmd.AgentID()); err != nil {
		return nil, err
	}

	// Repeated accept by the owning agent: nothing changed, nothing to write.
	if prev == pickup.Accepted {
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
