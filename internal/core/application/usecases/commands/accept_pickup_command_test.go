package commands_test

import (
	"testing"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptPickupCommand_ValidInput(t *testing.T) {
	requestID := kernel.NewUUID()
	agentID := kernel.NewUUID()
	cmd, err := commands.NewAcceptPickupCommand(requestID, agentID)
	require.NoError(t, err)
	assert.Equal(t, requestID, cmd.RequestID())
	assert.Equal(t, agentID, cmd.AgentID())
}

func TestNewAcceptPickupCommand_InvalidRequestID(t *testing.T) {
	_, err := commands.NewAcceptPickupCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAcceptPickupCommand_InvalidAgentID(t *testing.T) {
	_, err := commands.NewAcceptPickupCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAcceptPickupCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AcceptPickupCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAcceptPickupCommandIsNotConstructed)
}
