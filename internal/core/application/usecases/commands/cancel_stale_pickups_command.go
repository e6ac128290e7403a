package commands

import (
	"errors"
	"time"

	"ewaste/internal/pkg/guard"
)

var (
	ErrCancelStalePickupsCommandIsNotConstructed = errors.New(
		"CancelStalePickupsCommand must be created via NewCancelStalePickupsCommand constructor",
	)
	ErrOlderThanIsInvalid = errors.New("olderThan must be greater than 0")
)

// CancelStalePickupsCommand triggers batch cancellation of pickup requests that
// stayed pending longer than the given window without being claimed.
//
// Example:
//
//	cmd, _ := NewCancelStalePickupsCommand(14 * 24 * time.Hour)
//	handler := NewCancelStalePickupsCommandHandler(uowFactory)
//
//	// Run periodically from a scheduler
//	cancelled, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("stale cleanup failed: %v", err)
//	}
type CancelStalePickupsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStalePickupsCommand creates a command to cancel stale pending requests.
// Validates that the staleness window is positive.
func NewCancelStalePickupsCommand(olderThan time.Duration) (CancelStalePickupsCommand, error) {
	command := CancelStalePickupsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOlderThan(olderThan); err != nil {
		return CancelStalePickupsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStalePickupsCommandIsNotConstructed if validation fails.
func (c CancelStalePickupsCommand) Validate() error {
	return c.guard.Validate(ErrCancelStalePickupsCommandIsNotConstructed)
}

// OlderThan returns the staleness window: pending requests created earlier than
// now minus this duration are cancelled.
func (c CancelStalePickupsCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *CancelStalePickupsCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return ErrOlderThanIsInvalid
	}

	c.olderThan = olderThan
	return nil
}
