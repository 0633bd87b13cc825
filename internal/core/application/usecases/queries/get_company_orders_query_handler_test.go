package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"netondemand/internal/adapters/out/postgres/orderrepo"
	"netondemand/internal/core/application/usecases/queries"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency in query tests.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type GetCompanyOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCompanyOrdersQueryHandler
}

func (suite *GetCompanyOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
	suite.handler = queries.NewGetCompanyOrdersQueryHandler(db)
}

func (suite *GetCompanyOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetCompanyOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCompanyOrdersQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	query, err := queries.NewGetCompanyOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCompanyOrdersQueryHandlerTestSuite) TestHandle_ScopesToCompanyNewestFirst() {
	companyID := kernel.NewUUID()
	otherCompanyID := kernel.NewUUID()

	first := suite.seedOrder(companyID, 1)
	second := suite.seedOrder(companyID, 2)
	suite.seedOrder(otherCompanyID, 3)

	query, err := queries.NewGetCompanyOrdersQuery(companyID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(second.ID(), result[0].ID)
	suite.Equal("ORD-000002", result[0].OrderNumber)
	suite.Equal(first.ID(), result[1].ID)
	suite.Equal("ORD-000001", result[1].OrderNumber)
}

func (suite *GetCompanyOrdersQueryHandlerTestSuite) TestHandle_MapsTypedFields() {
	companyID := kernel.NewUUID()
	o := suite.seedOrder(companyID, 1)

	query, err := queries.NewGetCompanyOrdersQuery(companyID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	entry := result[0]
	suite.Equal("NewService", entry.OrderType)
	suite.Equal("Submitted", entry.Status)
	suite.Equal(o.ServiceID(), entry.ServiceID)
	suite.Nil(entry.ServiceInstanceID)
	suite.Require().NotNil(entry.RequestedBandwidthMbps)
	suite.Equal(500, *entry.RequestedBandwidthMbps)
	suite.True(entry.TotalCost.Equal(decimal.RequireFromString("449.00")))
	suite.Require().NotNil(entry.EstimatedCompletionDate)
	suite.Nil(entry.ActualCompletionDate)
}

func (suite *GetCompanyOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	var invalidQuery queries.GetCompanyOrdersQuery

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCompanyOrdersQuery constructor")
}

func (suite *GetCompanyOrdersQueryHandlerTestSuite) seedOrder(companyID kernel.UUID, seq int64) *order.Order {
	bandwidth := 500
	requested := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	estimated := requested.AddDate(0, 0, 3)

	o, err := order.NewOrder(
		kernel.NewUUID(), companyID, kernel.NewUUID(), kernel.NewUUID(),
		fmt.Sprintf("ORD-%06d", seq), order.NewService, order.Params{
			RequestedBandwidthMbps:  &bandwidth,
			TotalCost:               decimal.RequireFromString("449.00"),
			RequestedDate:           requested,
			EstimatedCompletionDate: &estimated,
		})
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), o))
	return o
}

func TestGetCompanyOrdersQueryHandler(t *testing.T) {
	suite.Run(t, new(GetCompanyOrdersQueryHandlerTestSuite))
}
