package commands

import (
	"context"

	"ewaste/internal/core/domain/model/pickup"
)

// CreatePickupRequestCommandHandler handles the business logic for pickup request creation.
// Creates new requests in "pending" status with no assigned agent.
//
// Example:
//
//	handler := NewCreatePickupRequestCommandHandler(uowFactory)
//	cmd, _ := NewCreatePickupRequestCommand(
//	    kernel.NewUUID(), requesterID, contact, nil, "battery", "", 4, preferredAt)
//
//	request, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("pickup request creation failed: %w", err)
//	}
//	// Request is now pending and visible to collection agents
type CreatePickupRequestCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewCreatePickupRequestCommandHandler creates a handler for pickup request creation.
// Requires a PickupUoWFactory for transactional persistence.
func NewCreatePickupRequestCommandHandler(uowFactory PickupUoWFactory) CreatePickupRequestCommandHandler {
	return CreatePickupRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup request creation command.
// Builds the aggregate in "pending" status and persists it within a transaction.
// Returns the created aggregate so callers can render the new resource.
func (h *CreatePickupRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePickupRequestCommand,
) (*pickup.PickupRequest, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	request, err := pickup.NewPickupRequest(
		cmd.RequestID(),
		cmd.RequesterID(),
		cmd.Contact(),
		cmd.Point(),
		cmd.Category(),
		cmd.Subtype(),
		cmd.Quantity(),
		cmd.PreferredAt(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PickupRequestRepository().Add(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}
