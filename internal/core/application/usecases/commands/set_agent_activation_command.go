package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var (
	ErrSetAgentActivationCommandIsNotConstructed = errors.New(
		"SetAgentActivationCommand must be created via NewSetAgentActivationCommand constructor",
	)
)

// SetAgentActivationCommand represents an administrative change of an agent's
// activation flag. Deactivated agents keep their current assignments and may
// still complete them, but can no longer claim new pickup requests.
type SetAgentActivationCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	active  bool

	guard guard.ConstructorGuard
}

// NewSetAgentActivationCommand creates a command to activate or deactivate an agent.
// Validates that the agent identifier is a valid UUID.
func NewSetAgentActivationCommand(agentID kernel.UUID, active bool) (SetAgentActivationCommand, error) {
	command := SetAgentActivationCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setAgentID(agentID); err != nil {
		return SetAgentActivationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetAgentActivationCommandIsNotConstructed if validation fails.
func (c SetAgentActivationCommand) Validate() error {
	return c.guard.Validate(ErrSetAgentActivationCommandIsNotConstructed)
}

// AgentID returns the identifier of the agent whose flag is being changed.
func (c SetAgentActivationCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Active returns the target activation state.
func (c SetAgentActivationCommand) Active() bool {
	return c.active
}

func (c *SetAgentActivationCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
