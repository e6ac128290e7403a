package commands

import (
	"context"

	"ewaste/internal/core/domain/model/agent"
)

// RegisterAgentCommandHandler handles the business logic for agent registration.
// New agents start active and may immediately claim pending pickup requests.
type RegisterAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewRegisterAgentCommandHandler creates a handler for agent registration operations.
// Requires an AgentUoWFactory for transactional persistence.
func NewRegisterAgentCommandHandler(uowFactory AgentUoWFactory) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent registration command.
// Creates the agent aggregate in active state and persists it within a transaction.
func (h *RegisterAgentCommandHandler) Handle(ctx context.Context, cmd RegisterAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newAgent, err := agent.NewAgent(cmd.AgentID(), cmd.Name(), cmd.Phone(), cmd.Home())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AgentRepository().Add(ctx, newAgent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
