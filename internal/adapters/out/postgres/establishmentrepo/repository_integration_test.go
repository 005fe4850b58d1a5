package establishmentrepo_test

import (
	"context"
	"testing"
	"time"

	"frangodahora/internal/adapters/out/postgres/establishmentrepo"
	"frangodahora/internal/core/domain/model/establishment"
	"frangodahora/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate any) {
	m.Called(aggregate)
}

// EstablishmentRepositoryIntegrationTestSuite provides integration tests for
// the establishment repository using a PostgreSQL container.
type EstablishmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *establishmentrepo.GormEstablishmentRepository
	tracker    *MockAggregateTracker
}

func (suite *EstablishmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&establishmentrepo.EstablishmentDTO{}))
}

func (suite *EstablishmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE establishments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything).Maybe()
	suite.repository = establishmentrepo.NewGormEstablishmentRepository(suite.db, suite.tracker)
}

func (suite *EstablishmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EstablishmentRepositoryIntegrationTestSuite) createEstablishment(
	remoteID int64, name string,
) *establishment.Establishment {
	aggregate, err := establishment.NewEstablishment(remoteID, "token-"+name, name)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *EstablishmentRepositoryIntegrationTestSuite) TestAddAndGet() {
	aggregate := suite.createEstablishment(77, "Frango da Hora")
	suite.NotZero(aggregate.ID())

	retrieved, err := suite.repository.Get(context.Background(), aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(77), retrieved.RemoteID())
	suite.Equal("token-Frango da Hora", retrieved.DeveloperToken())
	suite.True(retrieved.IsActive())
	suite.False(retrieved.AutoCloseStore())

	byRemote, err := suite.repository.GetByRemoteID(context.Background(), 77)
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), byRemote.ID())
}

func (suite *EstablishmentRepositoryIntegrationTestSuite) TestUpdate_FlagsSwitchOff() {
	ctx := context.Background()
	aggregate := suite.createEstablishment(77, "Frango da Hora")

	aggregate.SetAutomations(true, true)
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	aggregate.SetActive(false)
	aggregate.SetAutomations(false, false)
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())
	suite.False(retrieved.AutoCloseStore())
	suite.False(retrieved.AutoRejectOrders())
}

func (suite *EstablishmentRepositoryIntegrationTestSuite) TestGetAllActive_FiltersInactive() {
	ctx := context.Background()
	active := suite.createEstablishment(77, "Matriz")

	inactive := suite.createEstablishment(88, "Filial")
	inactive.SetActive(false)
	suite.Require().NoError(suite.repository.Update(ctx, inactive))

	establishments, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(establishments, 1)
	suite.Equal(active.ID(), establishments[0].ID())

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *EstablishmentRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	aggregate := suite.createEstablishment(77, "Frango da Hora")

	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	_, err := suite.repository.Get(ctx, aggregate.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	err = suite.repository.Delete(ctx, aggregate.ID())
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestEstablishmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EstablishmentRepositoryIntegrationTestSuite))
}
