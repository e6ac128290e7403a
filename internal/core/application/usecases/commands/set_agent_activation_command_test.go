package commands_test

import (
	"testing"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetAgentActivationCommand(t *testing.T) {
	t.Run("valid deactivation", func(t *testing.T) {
		agentID := kernel.NewUUID()

		cmd, err := commands.NewSetAgentActivationCommand(agentID, false)

		require.NoError(t, err)
		assert.True(t, cmd.AgentID().IsEqual(agentID))
		assert.False(t, cmd.Active())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("valid activation", func(t *testing.T) {
		cmd, err := commands.NewSetAgentActivationCommand(kernel.NewUUID(), true)

		require.NoError(t, err)
		assert.True(t, cmd.Active())
	})

	t.Run("invalid agent id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := commands.NewSetAgentActivationCommand(zeroID, false)

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.SetAgentActivationCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrSetAgentActivationCommandIsNotConstructed)
	})
}
