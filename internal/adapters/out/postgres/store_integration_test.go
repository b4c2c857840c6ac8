package postgres_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres"
	"catering/internal/core/domain/model/chef"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/driver"
	"catering/internal/core/domain/model/feedback"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/vehicle"
	"catering/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// StoreIntegrationTestSuite runs the store against a PostgreSQL container
// migrated with the embedded goose migrations.
type StoreIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	store     *postgres.Store
}

func TestStoreIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(StoreIntegrationTestSuite))
}

func (suite *StoreIntegrationTestSuite) SetupSuite() {
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

	db, err := postgres.Open(ctx, connStr)
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *StoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE customers, orders, drivers, vehicles, chefs, feedbacks").Error,
	)
	suite.store = postgres.NewStore(suite.db)
}

func (suite *StoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreIntegrationTestSuite) TestLoadAll_EmptyDatabase() {
	snapshot, err := suite.store.LoadAll(context.Background())

	suite.Require().NoError(err)
	suite.Empty(snapshot.Orders)
	suite.Empty(snapshot.Customers)
	suite.Empty(snapshot.Feedbacks)
}

func (suite *StoreIntegrationTestSuite) TestSaveAll_RoundTrip() {
	ctx := context.Background()
	saved := suite.snapshot()

	suite.Require().NoError(suite.store.SaveAll(ctx, saved))
	loaded, err := suite.store.LoadAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(loaded.Customers, 2)
	suite.Equal("C2", loaded.Customers[0].ID())
	suite.Equal("C1", loaded.Customers[1].ID())
	suite.Equal(4, loaded.Customers[1].OrdersThisMonth())

	suite.Require().Len(loaded.Orders, 2)
	suite.Equal("001", loaded.Orders[0].Number().String())
	suite.Equal(order.Delivered, loaded.Orders[0].Status())
	suite.Equal(order.OutForDelivery, loaded.Orders[1].Status())
	suite.Equal([]string{"Rahim", "Karim"}, loaded.Orders[1].Chefs())
	suite.Equal(order.Priority, loaded.Orders[1].Category())
	suite.InDelta(1140, loaded.Orders[1].FinalBill(), 0.001)
	suite.Equal("D1", loaded.Orders[1].DriverID())
	suite.Equal(1, loaded.Orders[1].QueuePosition())

	suite.Require().Len(loaded.Drivers, 2)
	suite.Equal("D2", loaded.Drivers[0].ID())
	suite.False(loaded.Drivers[1].IsAvailable())
	suite.True(loaded.Drivers[1].VerifyLicense("LIC-1"))

	suite.Require().Len(loaded.Vehicles, 1)
	suite.Equal("Van", loaded.Vehicles[0].Type())

	suite.Require().Len(loaded.Chefs, 1)
	suite.Equal("Rahim", loaded.Chefs[0].Name())

	suite.Require().Len(loaded.Feedbacks, 1)
	suite.True(saved.Feedbacks[0].ID().IsEqual(loaded.Feedbacks[0].ID()))
	suite.True(saved.Feedbacks[0].CreatedAt().Equal(loaded.Feedbacks[0].CreatedAt()))
}

func (suite *StoreIntegrationTestSuite) TestSaveAll_UpsertsChangedRows() {
	ctx := context.Background()
	snapshot := suite.snapshot()
	suite.Require().NoError(suite.store.SaveAll(ctx, snapshot))

	snapshot.Customers[1].ResetMonthlyOrders()
	suite.Require().NoError(snapshot.Orders[1].MarkDelivered())
	snapshot.Drivers[1].Release()
	suite.Require().NoError(suite.store.SaveAll(ctx, snapshot))

	loaded, err := suite.store.LoadAll(ctx)
	suite.Require().NoError(err)
	suite.Len(loaded.Customers, 2)
	suite.Equal(0, loaded.Customers[1].OrdersThisMonth())
	suite.Equal(order.Delivered, loaded.Orders[1].Status())
	suite.Equal(0, loaded.Orders[1].QueuePosition())
	suite.True(loaded.Drivers[1].IsAvailable())
}

func (suite *StoreIntegrationTestSuite) TestSaveAll_SkipsGuests() {
	ctx := context.Background()
	snapshot := ports.Snapshot{Customers: []*customer.Customer{customer.NewGuest()}}

	suite.Require().NoError(suite.store.SaveAll(ctx, snapshot))

	loaded, err := suite.store.LoadAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(loaded.Customers)
}

func (suite *StoreIntegrationTestSuite) TestLoadAll_RejectsCorruptRows() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec(
		`INSERT INTO orders (number, customer_id, items, gross_bill, discount, final_bill, status)
		 VALUES (1, 'C1', '1x Veg Burger', 180, 0, 180, 'COOKING')`,
	).Error)

	_, err := suite.store.LoadAll(ctx)

	suite.Require().Error(err)
}

func (suite *StoreIntegrationTestSuite) TestSaveAll_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := suite.store.SaveAll(ctx, suite.snapshot())

	suite.Require().Error(err)
}

func (suite *StoreIntegrationTestSuite) snapshot() ports.Snapshot {
	c2, err := customer.RestoreRegistered("C2", 0)
	suite.Require().NoError(err)
	c1, err := customer.RestoreRegistered("C1", 4)
	suite.Require().NoError(err)

	delivered, err := order.RestoreOrder(order.RestoreParams{
		Number:     suite.number(1),
		CustomerID: "C2",
		Items:      "1x Veg Burger",
		GrossBill:  180,
		Discount:   9,
		Status:     order.Delivered,
		Category:   order.Normal,
		Chefs:      []string{"Rahim"},
		EtaMinutes: 10,
		DriverID:   "D2",
	})
	suite.Require().NoError(err)

	outForDelivery, err := order.RestoreOrder(order.RestoreParams{
		Number:        suite.number(2),
		CustomerID:    "C1",
		Items:         "1x Mixed Grill Platter",
		GrossBill:     1200,
		Discount:      60,
		Status:        order.OutForDelivery,
		Category:      order.Priority,
		Chefs:         []string{"Rahim", "Karim"},
		EtaMinutes:    30,
		DriverID:      "D1",
		VehicleID:     "V1",
		QueuePosition: 1,
	})
	suite.Require().NoError(err)

	d2, err := driver.RestoreDriver("D2", "Jamal", "LIC-2", true)
	suite.Require().NoError(err)
	d1, err := driver.RestoreDriver("D1", "Karim", "LIC-1", false)
	suite.Require().NoError(err)
	v1, err := vehicle.RestoreVehicle("V1", "Van", false)
	suite.Require().NoError(err)
	ch, err := chef.NewChef("Rahim")
	suite.Require().NoError(err)
	fb, err := feedback.NewFeedback(kernel.NewUUID(), suite.number(1), 4, "good", time.Now().Truncate(time.Microsecond))
	suite.Require().NoError(err)

	return ports.Snapshot{
		Customers: []*customer.Customer{c2, c1},
		Orders:    []*order.Order{delivered, outForDelivery},
		Drivers:   []*driver.Driver{d2, d1},
		Vehicles:  []*vehicle.Vehicle{v1},
		Chefs:     []*chef.Chef{ch},
		Feedbacks: []*feedback.Feedback{fb},
	}
}

func (suite *StoreIntegrationTestSuite) number(seq int) kernel.OrderNumber {
	n, err := kernel.NewOrderNumber(seq)
	suite.Require().NoError(err)
	return n
}
