package commands_test

import (
	"testing"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetAgentActivationCommandHandler_Handle_Deactivate(t *testing.T) {
	ctx := t.Context()
	worker := testActiveAgent(t)
	cmd, _ := commands.NewSetAgentActivationCommand(worker.ID(), false)

	repo := new(MockAgentRepository)
	uow := new(MockAgentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, worker.ID()).Return(worker, nil).Once(),
		uow.On("AgentRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, worker).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetAgentActivationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, worker.IsActive())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSetAgentActivationCommandHandler_Handle_Reactivate(t *testing.T) {
	ctx := t.Context()
	worker := testActiveAgent(t)
	worker.Deactivate()
	cmd, _ := commands.NewSetAgentActivationCommand(worker.ID(), true)

	repo := new(MockAgentRepository)
	uow := new(MockAgentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, worker.ID()).Return(worker, nil).Once(),
		uow.On("AgentRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, worker).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetAgentActivationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, worker.IsActive())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetAgentActivationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SetAgentActivationCommand{} // not constructed properly
	factory := new(MockAgentUoWFactory)
	h := commands.NewSetAgentActivationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestSetAgentActivationCommandHandler_Handle_AgentNotFound(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	cmd, _ := commands.NewSetAgentActivationCommand(agentID, false)

	repo := new(MockAgentRepository)
	uow := new(MockAgentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, agentID).
			Return(nil, errs.NewObjectNotFoundError("agent", agentID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetAgentActivationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
