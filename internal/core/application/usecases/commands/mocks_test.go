package commands_test

import (
	"context"
	"testing"
	"time"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPickupRepository struct{ mock.Mock }

func (m *MockPickupRepository) Add(ctx context.Context, r *pickup.PickupRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPickupRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.PickupRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pickup.PickupRequest), args.Error(1)
}

func (m *MockPickupRepository) UpdateWhenStatus(
	ctx context.Context,
	r *pickup.PickupRequest,
	expected pickup.Status,
) error {
	args := m.Called(ctx, r, expected)
	return args.Error(0)
}

func (m *MockPickupRepository) GetAllPendingBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*pickup.PickupRequest, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pickup.PickupRequest), args.Error(1)
}

func (m *MockPickupRepository) GetAllAcceptedByAgent(
	ctx context.Context,
	agentID kernel.UUID,
) ([]*pickup.PickupRequest, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pickup.PickupRequest), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

type MockPickupUoW struct{ mock.Mock }

func (m *MockPickupUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupUoW) PickupRequestRepository() ports.PickupRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.PickupRequestRepository)
}

type MockPickupUoWFactory struct{ mock.Mock }

func (m *MockPickupUoWFactory) Create() commands.PickupUoW {
	args := m.Called()
	return args.Get(0).(commands.PickupUoW)
}

type MockAgentUoW struct{ mock.Mock }

func (m *MockAgentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAgentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAgentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAgentUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

type MockAgentUoWFactory struct{ mock.Mock }

func (m *MockAgentUoWFactory) Create() commands.AgentUoW {
	args := m.Called()
	return args.Get(0).(commands.AgentUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PickupRequestRepository() ports.PickupRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.PickupRequestRepository)
}

func (m *MockUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func testContact(t *testing.T) pickup.Contact {
	t.Helper()
	contact, err := pickup.NewContact("Erika Muster", "+49301234567", "Brunnenstr. 7", "Berlin", "10115")
	require.NoError(t, err)
	return contact
}

func testPendingRequest(t *testing.T) *pickup.PickupRequest {
	t.Helper()
	point, err := kernel.NewGeoPoint(13.405, 52.52)
	require.NoError(t, err)

	request, err := pickup.NewPickupRequest(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testContact(t),
		&point,
		"appliance",
		"washing machine",
		1,
		time.Now().UTC().Add(48*time.Hour),
	)
	require.NoError(t, err)
	return request
}

func testActiveAgent(t *testing.T) *agent.Agent {
	t.Helper()
	home, err := kernel.NewGeoPoint(13.3889, 52.517)
	require.NoError(t, err)

	worker, err := agent.NewAgent(kernel.NewUUID(), "Jana Meyer", "+49307654321", home)
	require.NoError(t, err)
	return worker
}
