package commands_test

import (
	"testing"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelPickupCommand_ValidInput(t *testing.T) {
	requestID := kernel.NewUUID()
	cmd, err := commands.NewCancelPickupCommand(requestID)
	require.NoError(t, err)
	assert.Equal(t, requestID, cmd.RequestID())
}

func TestNewCancelPickupCommand_InvalidRequestID(t *testing.T) {
	_, err := commands.NewCancelPickupCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelPickupCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CancelPickupCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelPickupCommandIsNotConstructed)
}
