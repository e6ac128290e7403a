package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var (
	ErrAcceptPickupCommandIsNotConstructed = errors.New(
		"AcceptPickupCommand must be created via NewAcceptPickupCommand constructor",
	)
)

// AcceptPickupCommand represents an agent claiming a pending pickup request.
// Carries the identifiers of the request to claim and the claiming agent.
//
// Example:
//
//	cmd, err := NewAcceptPickupCommand(requestID, agentID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAcceptPickupCommandHandler(uowFactory)
//	request, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConcurrencyConflict) {
//	    // another agent claimed the request first
//	}
type AcceptPickupCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	agentID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptPickupCommand creates a command for an agent to claim a pickup request.
// Validates that both identifiers are valid UUIDs.
func NewAcceptPickupCommand(requestID kernel.UUID, agentID kernel.UUID) (AcceptPickupCommand, error) {
	command := AcceptPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setAgentID(agentID),
	); err != nil {
		return AcceptPickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptPickupCommandIsNotConstructed if validation fails.
func (c AcceptPickupCommand) Validate() error {
	return c.guard.Validate(ErrAcceptPickupCommandIsNotConstructed)
}

// RequestID returns the identifier of the pickup request being claimed.
func (c AcceptPickupCommand) RequestID() kernel.UUID {
	return c.requestID
}

// AgentID returns the identifier of the claiming agent.
func (c AcceptPickupCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *AcceptPickupCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *AcceptPickupCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
