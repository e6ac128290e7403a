package commands_test

import (
	"testing"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterAgentCommand_ValidInput(t *testing.T) {
	agentID := kernel.NewUUID()
	home, err := kernel.NewGeoPoint(13.405, 52.52)
	require.NoError(t, err)

	cmd, err := commands.NewRegisterAgentCommand(agentID, "Jana Meyer", "+49301234567", home)
	require.NoError(t, err)
	assert.Equal(t, agentID, cmd.AgentID())
	assert.Equal(t, "Jana Meyer", cmd.Name())
	assert.Equal(t, "+49301234567", cmd.Phone())
	isEqual, err := home.IsEqual(cmd.Home())
	require.NoError(t, err)
	assert.True(t, isEqual)
}

func TestNewRegisterAgentCommand_EmptyName(t *testing.T) {
	home, err := kernel.NewGeoPoint(13.405, 52.52)
	require.NoError(t, err)

	_, err = commands.NewRegisterAgentCommand(kernel.NewUUID(), "", "+49301234567", home)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestNewRegisterAgentCommand_EmptyPhone(t *testing.T) {
	home, err := kernel.NewGeoPoint(13.405, 52.52)
	require.NoError(t, err)

	_, err = commands.NewRegisterAgentCommand(kernel.NewUUID(), "Jana Meyer", "", home)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPhoneIsRequired)
}

func TestNewRegisterAgentCommand_UnconstructedHome(t *testing.T) {
	_, err := commands.NewRegisterAgentCommand(kernel.NewUUID(), "Jana Meyer", "+49301234567", kernel.GeoPoint{})
	require.Error(t, err)
}
