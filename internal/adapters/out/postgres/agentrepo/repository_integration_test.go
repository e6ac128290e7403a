package agentrepo_test

import (
	"context"
	"testing"
	"time"

	"ewaste/internal/adapters/out/postgres/agentrepo"
	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// AgentRepositoryIntegrationTestSuite provides integration tests for
// AgentRepository using PostgreSQL containers.
type AgentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *agentrepo.GormAgentRepository
	tracker    *MockAggregateTracker
}

func (suite *AgentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&agentrepo.AgentDTO{}))
}

func (suite *AgentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE agents").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = agentrepo.NewGormAgentRepository(suite.db, suite.tracker)
}

func (suite *AgentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AgentRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	worker := suite.createTestAgent()

	suite.Require().NoError(suite.repository.Add(ctx, worker))

	restored, err := suite.repository.Get(ctx, worker.ID())
	suite.Require().NoError(err)
	suite.True(worker.ID().IsEqual(restored.ID()))
	suite.Equal(worker.Name(), restored.Name())
	suite.Equal(worker.Phone(), restored.Phone())
	suite.True(worker.Home().IsEqual(restored.Home()))
	suite.True(restored.IsActive())
}

func (suite *AgentRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AgentRepositoryIntegrationTestSuite) TestUpdate_PersistsDeactivation() {
	ctx := context.Background()
	worker := suite.createTestAgent()
	suite.Require().NoError(suite.repository.Add(ctx, worker))

	worker.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, worker))

	restored, err := suite.repository.Get(ctx, worker.ID())
	suite.Require().NoError(err)
	suite.False(restored.IsActive())
}

func (suite *AgentRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createTestAgent())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AgentRepositoryIntegrationTestSuite) createTestAgent() *agent.Agent {
	home, err := kernel.NewGeoPoint(13.405, 52.52)
	suite.Require().NoError(err)

	worker, err := agent.NewAgent(kernel.NewUUID(), "Jana Meyer", "+49301234567", home)
	suite.Require().NoError(err)
	return worker
}

func TestAgentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AgentRepositoryIntegrationTestSuite))
}
