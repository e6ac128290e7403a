package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var (
	ErrCompletePickupCommandIsNotConstructed = errors.New(
		"CompletePickupCommand must be created via NewCompletePickupCommand constructor",
	)
)

// CompletePickupCommand represents the assigned agent finishing a pickup.
// Carries the identifiers of the accepted request and the completing agent.
type CompletePickupCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	agentID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompletePickupCommand creates a command to mark a pickup request completed.
// Validates that both identifiers are valid UUIDs.
func NewCompletePickupCommand(requestID kernel.UUID, agentID kernel.UUID) (CompletePickupCommand, error) {
	command := CompletePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setAgentID(agentID),
	); err != nil {
		return CompletePickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompletePickupCommandIsNotConstructed if validation fails.
func (c CompletePickupCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickupCommandIsNotConstructed)
}

// RequestID returns the identifier of the pickup request being completed.
func (c CompletePickupCommand) RequestID() kernel.UUID {
	return c.requestID
}

// AgentID returns the identifier of the completing agent.
func (c CompletePickupCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *CompletePickupCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CompletePickupCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
