package stockrepo_test

import (
	"context"
	"testing"
	"time"

	"frangodahora/internal/adapters/out/postgres/stockrepo"
	"frangodahora/internal/core/domain/model/kernel"
	"frangodahora/internal/core/domain/model/stock"

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

// StockRepositoryIntegrationTestSuite provides integration tests for the
// stock repository using a PostgreSQL container.
type StockRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *stockrepo.GormStockRepository
	tracker    *MockAggregateTracker
}

func (suite *StockRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&stockrepo.StockDayDTO{}))
}

func (suite *StockRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stock_days").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything).Maybe()
	suite.repository = stockrepo.NewGormStockRepository(suite.db, suite.tracker)
}

func (suite *StockRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StockRepositoryIntegrationTestSuite) testDay() kernel.Day {
	return kernel.NewDay(time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC))
}

func (suite *StockRepositoryIntegrationTestSuite) TestUpsert_ReplacesEarlierEntry() {
	ctx := context.Background()
	day := suite.testDay()

	entry, err := stock.NewStockDay(day, 30)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, entry))

	corrected, err := stock.NewStockDay(day, 25)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, corrected))

	retrieved, err := suite.repository.Get(ctx, day)
	suite.Require().NoError(err)
	suite.Equal(25.0, retrieved.Initial())

	var count int64
	suite.Require().NoError(suite.db.Model(&stockrepo.StockDayDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *StockRepositoryIntegrationTestSuite) TestGet_MissingDayYieldsZeroEntry() {
	retrieved, err := suite.repository.Get(context.Background(), suite.testDay())
	suite.Require().NoError(err)
	suite.Zero(retrieved.Initial())
	suite.True(retrieved.Day().IsEqual(suite.testDay()))
}

func (suite *StockRepositoryIntegrationTestSuite) TestGetForUpdate_SeedsMissingRow() {
	ctx := context.Background()

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)

	repo := stockrepo.NewGormStockRepository(tx, suite.tracker)
	retrieved, err := repo.GetForUpdate(ctx, suite.testDay())
	suite.Require().NoError(err)
	suite.Zero(retrieved.Initial())
	suite.Require().NoError(tx.Commit().Error)

	// The seeded row survives the transaction.
	var count int64
	suite.Require().NoError(suite.db.Model(&stockrepo.StockDayDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *StockRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesCompetingTransactions() {
	ctx := context.Background()
	day := suite.testDay()

	entry, err := stock.NewStockDay(day, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(ctx, entry))

	first := suite.db.Begin()
	suite.Require().NoError(first.Error)
	_, err = stockrepo.NewGormStockRepository(first, suite.tracker).GetForUpdate(ctx, day)
	suite.Require().NoError(err)

	acquired := make(chan error, 1)
	go func() {
		second := suite.db.Begin()
		if second.Error != nil {
			acquired <- second.Error
			return
		}
		_, lockErr := stockrepo.NewGormStockRepository(second, suite.tracker).GetForUpdate(ctx, day)
		second.Rollback()
		acquired <- lockErr
	}()

	select {
	case <-acquired:
		suite.Fail("second transaction acquired the day lock while the first still held it")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(first.Commit().Error)

	select {
	case lockErr := <-acquired:
		suite.Require().NoError(lockErr)
	case <-time.After(5 * time.Second):
		suite.Fail("second transaction never acquired the day lock")
	}
}

func TestStockRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StockRepositoryIntegrationTestSuite))
}
