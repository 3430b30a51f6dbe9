package queries_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/shipmentrepo"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	registry  *status.Registry
	orders    *orderrepo.GormOrderRepository
	shipments *shipmentrepo.GormShipmentRepository
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &shipmentrepo.ShipmentDTO{})
	suite.Require().NoError(err)

	suite.registry, err = status.LoadRegistry([]status.Contribution{status.DefaultContribution()})
	suite.Require().NoError(err)
	suite.orders = orderrepo.NewGormOrderRepository(db)
	suite.shipments = shipmentrepo.NewGormShipmentRepository(db)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, shipments").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_ReturnsDisplayDataAndTrackingLinks() {
	ctx := context.Background()
	o := suite.addOrder("paid", "shipped", "processing", false)
	tracked, err := shipment.NewShipment(kernel.NewUUID(), o.ID(), "fedex", "7946 1234", 2, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipments.Add(ctx, tracked))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderQueryHandler(suite.db, suite.registry).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), resp.ID)
	suite.Equal(queries.StatusView{Code: "paid", Name: "Paid", Badge: "success"}, resp.PaymentStatus)
	suite.Equal("Shipped", resp.ShipmentStatus.Name)
	suite.Equal("Processing", resp.Status.Name)
	suite.False(resp.Terminal)
	suite.Require().Len(resp.Shipments, 1)
	suite.Equal("FedEx", resp.Shipments[0].CarrierName)
	suite.Equal("https://www.fedex.com/fedextrack/?trknbr=7946+1234", resp.Shipments[0].TrackingLink)
	suite.Equal(2, resp.Shipments[0].ItemCount)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_UnknownStoredCodeFallsBackToCode() {
	o := suite.addOrder("authorized", "pending", "new", false)
	query, _ := queries.NewGetOrderQuery(o.ID())

	resp, err := queries.NewGetOrderQueryHandler(suite.db, suite.registry).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(queries.StatusView{Code: "authorized", Name: "authorized"}, resp.PaymentStatus)
	suite.NotNil(resp.Shipments)
	suite.Empty(resp.Shipments)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_NotFound() {
	query, _ := queries.NewGetOrderQuery(kernel.NewUUID())

	resp, err := queries.NewGetOrderQueryHandler(suite.db, suite.registry).Handle(context.Background(), query)

	suite.Nil(resp)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetOpenOrders_ExcludesTerminalStatuses() {
	open := suite.addOrder("pending", "pending", "new", false)
	completed := suite.addOrder("paid", "delivered", "completed", false)
	suite.addOrder("canceled", "canceled", "canceled", false)
	suite.addOrder("refunded", "delivered", "closed", false)
	query, _ := queries.NewGetOpenOrdersQuery(10)

	result, err := queries.NewGetOpenOrdersQueryHandler(suite.db, suite.registry).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	ids := []kernel.UUID{result[0].ID, result[1].ID}
	suite.ElementsMatch([]kernel.UUID{open.ID(), completed.ID()}, ids)
}

func (suite *OrderQueriesTestSuite) TestGetOpenOrders_RespectsLimit() {
	for range 3 {
		suite.addOrder("pending", "pending", "new", false)
	}
	query, _ := queries.NewGetOpenOrdersQuery(2)

	result, err := queries.NewGetOpenOrdersQueryHandler(suite.db, suite.registry).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *OrderQueriesTestSuite) TestGetOpenOrders_ContextCancellation_ReturnsError() {
	suite.addOrder("pending", "pending", "new", false)
	query, _ := queries.NewGetOpenOrdersQuery(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := queries.NewGetOpenOrdersQueryHandler(suite.db, suite.registry).Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *OrderQueriesTestSuite) addOrder(payment, shipmentCode, orderCode string, noShipping bool) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), payment, shipmentCode, orderCode, noShipping)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
