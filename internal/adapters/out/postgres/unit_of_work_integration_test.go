package postgres_test

import (
	"context"
	"testing"
	"time"

	"ewaste/internal/adapters/out/postgres"
	"ewaste/internal/adapters/out/postgres/agentrepo"
	"ewaste/internal/adapters/out/postgres/pickuprepo"
	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction management and repository
// coordination against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&pickuprepo.PickupRequestDTO{}, &agentrepo.AgentDTO{}))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pickup_requests, agents").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreateReturnsIsolatedInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin is idempotent; no nested transaction is opened.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// Transaction is closed; further commits fail.
	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	worker := suite.createTestAgent()
	request := suite.createTestRequest()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AgentRepository().Add(ctx, worker))
	suite.Require().NoError(uow.PickupRequestRepository().Add(ctx, request))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	storedAgent, err := verify.AgentRepository().Get(ctx, worker.ID())
	suite.Require().NoError(err)
	suite.True(worker.ID().IsEqual(storedAgent.ID()))

	storedRequest, err := verify.PickupRequestRepository().Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Equal(pickup.Pending, storedRequest.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	request := suite.createTestRequest()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PickupRequestRepository().Add(ctx, request))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&pickuprepo.PickupRequestDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestClaimWorkflow() {
	ctx := context.Background()

	setup := suite.factory.Create()
	worker := suite.createTestAgent()
	request := suite.createTestRequest()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.AgentRepository().Add(ctx, worker))
	suite.Require().NoError(setup.PickupRequestRepository().Add(ctx, request))
	suite.Require().NoError(setup.Commit(ctx))

	claim := suite.factory.Create()
	suite.Require().NoError(claim.Begin(ctx))
	repo := claim.PickupRequestRepository()
	stored, err := repo.Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(stored.Accept(worker.ID()))
	suite.Require().NoError(repo.UpdateWhenStatus(ctx, stored, pickup.Pending))
	suite.Require().NoError(claim.Commit(ctx))

	verify := suite.factory.Create()
	accepted, err := verify.PickupRequestRepository().GetAllAcceptedByAgent(ctx, worker.ID())
	suite.Require().NoError(err)
	suite.Require().Len(accepted, 1)
	suite.True(request.ID().IsEqual(accepted[0].ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_RepositoriesStillWork() {
	ctx := context.Background()
	uow := suite.factory.Create()
	request := suite.createTestRequest()

	// No Begin: operations run directly against the main connection.
	suite.Require().NoError(uow.PickupRequestRepository().Add(ctx, request))

	stored, err := uow.PickupRequestRepository().Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.True(request.ID().IsEqual(stored.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestAgent() *agent.Agent {
	home, err := kernel.NewGeoPoint(13.405, 52.52)
	suite.Require().NoError(err)

	worker, err := agent.NewAgent(kernel.NewUUID(), "Jana Meyer", "+49301234567", home)
	suite.Require().NoError(err)
	return worker
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestRequest() *pickup.PickupRequest {
	contact, err := pickup.NewContact("Erika Muster", "+49301234567", "Brunnenstr. 7", "Berlin", "10115")
	suite.Require().NoError(err)

	point, err := kernel.NewGeoPoint(13.405, 52.52)
	suite.Require().NoError(err)

	request, err := pickup.NewPickupRequest(
		kernel.NewUUID(),
		kernel.NewUUID(),
		contact,
		&point,
		"appliance",
		"",
		2,
		time.Now().UTC().Add(24*time.Hour),
	)
	suite.Require().NoError(err)
	return request
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
