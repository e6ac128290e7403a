package commands

import (
	"context"
)

// SetAgentActivationCommandHandler handles the business logic for flipping an
// agent's activation flag.
type SetAgentActivationCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewSetAgentActivationCommandHandler creates a handler for agent activation changes.
// Requires an AgentUoWFactory for transactional persistence.
func NewSetAgentActivationCommandHandler(uowFactory AgentUoWFactory) SetAgentActivationCommandHandler {
	return SetAgentActivationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation change command.
// Loads the agent, flips the flag to the requested state and persists the
// change within a transaction. Setting the flag to its current value is a no-op
// that still succeeds.
func (h *SetAgentActivationCommandHandler) Handle(ctx context.Context, cmd SetAgentActivationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	worker, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		worker.Activate()
	} else {
		worker.Deactivate()
	}

	if err = uow.AgentRepository().Update(ctx, worker); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
