package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"rentops/internal/adapters/out/postgres/orderrepo"
	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/core/domain/model/pricing"
	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type allowAllPermissions struct{}

func (allowAllPermissions) CanPerform(string, string) bool { return true }

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence of the
// full aggregate: history, ledger, pricing inputs, and the version check.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.HistoryDTO{}, &orderrepo.LineItemDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_status_history, order_line_items",
	).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	details := order.Details{
		ContactName:  "Noor Haddad",
		ContactEmail: "noor@example.com",
		VenueName:    "Expo Hall 3",
		EventStart:   time.Now().Add(48 * time.Hour).UTC(),
		EventEnd:     time.Now().Add(72 * time.Hour).UTC(),
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), details, kernel.NewUUID())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) priceTestOrder(o *order.Order) {
	volume, err := kernel.NewVolumeFromString("10.000")
	suite.Require().NoError(err)

	rate, err := kernel.NewMoneyFromString("100.00")
	suite.Require().NoError(err)

	base, err := pricing.NewBaseOperations(volume, rate)
	suite.Require().NoError(err)

	transportRate, err := kernel.NewMoneyFromString("300.00")
	suite.Require().NoError(err)

	transport, err := pricing.NewTransport("dubai", pricing.RoundTrip, "box-truck", transportRate, transportRate)
	suite.Require().NoError(err)

	suite.Require().NoError(o.SetPricingInputs(base, transport, decimal.NewFromInt(25)))
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Require().Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesAggregate() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.priceTestOrder(testOrder)

	item, err := lineitem.NewLineItem(
		kernel.NewUUID(), "Forklift with operator", lineitem.CategoryEquipment,
		lineitem.Billable, decimal.NewFromInt(2), "day",
		kernel.NewMoney(decimal.RequireFromString("50.00")),
		map[string]string{"serviceTypeId": "svc-forklift"},
	)
	suite.Require().NoError(err)

	perms := allowAllPermissions{}
	actor := kernel.NewUUID()
	suite.Require().NoError(testOrder.Transition(order.Submitted, actor, "", perms))
	suite.Require().NoError(testOrder.Transition(order.PricingReview, actor, "", perms))
	suite.Require().NoError(testOrder.AddLineItem(item, order.EditPolicy{order.PricingReview}))

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().True(restored.ID().IsEqual(testOrder.ID()))
	suite.Require().Equal(testOrder.Code(), restored.Code())
	suite.Require().Equal(order.PricingReview, restored.Status())
	suite.Require().Len(restored.History(), 3)
	suite.Require().Len(restored.LineItems(), 1)
	suite.Require().Equal("100.00", restored.LineItems()[0].LineTotal().String())

	suite.Require().NotNil(restored.Pricing())
	suite.Require().True(restored.Pricing().IsEqual(*testOrder.Pricing()))
	suite.Require().Equal("1750.00", restored.Pricing().FinalTotal().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AdvancesVersion() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Transition(order.Submitted, kernel.NewUUID(), "", allowAllPermissions{}))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.Require().Equal(int64(1), testOrder.Version())

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Equal(order.Submitted, restored.Status())
	suite.Require().Equal(int64(1), restored.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ConcurrentModification() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	perms := allowAllPermissions{}
	suite.Require().NoError(first.Transition(order.Submitted, kernel.NewUUID(), "", perms))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Transition(order.Submitted, kernel.NewUUID(), "", perms))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus() {
	ctx := context.Background()
	perms := allowAllPermissions{}

	draft := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	submitted := suite.createTestOrder()
	suite.Require().NoError(submitted.Transition(order.Submitted, kernel.NewUUID(), "", perms))
	suite.Require().NoError(suite.repository.Add(ctx, submitted))

	found, err := suite.repository.GetAllInStatus(ctx, order.Submitted)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Require().True(found[0].ID().IsEqual(submitted.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInvoicedUnpaid() {
	ctx := context.Background()

	invoiced := suite.createTestOrder()
	suite.Require().NoError(invoiced.MarkInvoiced("INV-1001", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, invoiced))

	paid := suite.createTestOrder()
	suite.Require().NoError(paid.MarkInvoiced("INV-1002", time.Now().UTC()))
	suite.Require().NoError(paid.RecordPayment(order.Payment{
		Method: "bank-transfer", Reference: "TRX-1", Date: time.Now().UTC(),
	}))
	suite.Require().NoError(suite.repository.Add(ctx, paid))

	unpaid, err := suite.repository.GetAllInvoicedUnpaid(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(unpaid, 1)
	suite.Require().True(unpaid[0].ID().IsEqual(invoiced.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllWithPickupBefore() {
	ctx := context.Background()
	perms := allowAllPermissions{}
	actor := kernel.NewUUID()

	inUse := suite.createTestOrder()
	for _, next := range []order.Status{
		order.Submitted, order.PricingReview, order.Quoted, order.Confirmed,
		order.InPreparation, order.ReadyForDelivery, order.InTransit,
		order.Delivered, order.InUse,
	} {
		suite.Require().NoError(inUse.Transition(next, actor, "", perms))
	}

	soon := time.Now().Add(12 * time.Hour).UTC()
	delivery, err := order.NewWindow(soon.Add(-72*time.Hour), soon.Add(-70*time.Hour))
	suite.Require().NoError(err)
	pickup, err := order.NewWindow(soon, soon.Add(2*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(inUse.AssignWindows(delivery, pickup))
	suite.Require().NoError(suite.repository.Add(ctx, inUse))

	unscheduled := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, unscheduled))

	due, err := suite.repository.GetAllWithPickupBefore(ctx, time.Now().Add(24*time.Hour).UTC())
	suite.Require().NoError(err)
	suite.Require().Len(due, 1)
	suite.Require().True(due[0].ID().IsEqual(inUse.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
