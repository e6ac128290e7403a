package commands_test

import (
	"errors"
	"testing"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	home, err := kernel.NewGeoPoint(13.405, 52.52)
	require.NoError(t, err)
	cmd, _ := commands.NewRegisterAgentCommand(kernel.NewUUID(), "Jana Meyer", "+49301234567", home)

	repo := new(MockAgentRepository)
	uow := new(MockAgentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*agent.Agent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAgentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterAgentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterAgentCommand{} // not constructed properly
	factory := new(MockAgentUoWFactory)
	h := commands.NewRegisterAgentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterAgentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	home, err := kernel.NewGeoPoint(13.405, 52.52)
	require.NoError(t, err)
	cmd, _ := commands.NewRegisterAgentCommand(kernel.NewUUID(), "Jana Meyer", "+49301234567", home)

	repo := new(MockAgentRepository)
	uow := new(MockAgentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*agent.Agent")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAgentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
