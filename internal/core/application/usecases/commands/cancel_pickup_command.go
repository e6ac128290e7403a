package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var (
	ErrCancelPickupCommandIsNotConstructed = errors.New(
		"CancelPickupCommand must be created via NewCancelPickupCommand constructor",
	)
)

// CancelPickupCommand represents the administrative cancellation of a pickup request.
// Cancellation is allowed from both the pending and the accepted state.
type CancelPickupCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelPickupCommand creates a command to cancel a pickup request.
// Validates that the request identifier is a valid UUID.
func NewCancelPickupCommand(requestID kernel.UUID) (CancelPickupCommand, error) {
	command := CancelPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return CancelPickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelPickupCommandIsNotConstructed if validation fails.
func (c CancelPickupCommand) Validate() error {
	return c.guard.Validate(ErrCancelPickupCommandIsNotConstructed)
}

// RequestID returns the identifier of the pickup request being cancelled.
func (c CancelPickupCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *CancelPickupCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
