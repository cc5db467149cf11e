package cmd

import (
	"log/slog"
	"time"

	httpin "rentops/internal/adapters/in/http"
	"rentops/internal/adapters/out/assets"
	"rentops/internal/adapters/out/notify"
	"rentops/internal/adapters/out/postgres"
	"rentops/internal/adapters/out/postgres/orderrepo"
	"rentops/internal/adapters/out/postgres/requestrepo"
	"rentops/internal/adapters/out/postgres/reskinrepo"
	"rentops/internal/adapters/out/rates"
	"rentops/internal/core/application/usecases/commands"
	"rentops/internal/core/application/usecases/queries"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/core/domain/services"
	"rentops/internal/core/ports"
	"rentops/internal/jobs"

	"gorm.io/gorm"
)

// ledgerEditPolicy is the default set of statuses in which admins may edit
// an order's ledger.
var ledgerEditPolicy = order.EditPolicy{order.PricingReview, order.PendingApproval}

// allowAllPermissions grants every transition. Role checks live in the
// platform's identity service; this stands in until that integration is
// wired per deployment.
type allowAllPermissions struct{}

func (allowAllPermissions) CanPerform(string, string) bool { return true }

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	notifier       ports.Notifier
	assetCatalog   ports.AssetCatalog
	perms          order.PermissionChecker
	pricingService *services.PricingService

	baseRates      *rates.StaticBaseRateCatalog
	transportRates *rates.StaticTransportRateCatalog
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	baseRates := rates.NewStaticBaseRateCatalog()
	transportRates := rates.NewStaticTransportRateCatalog()

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:         logger,
		notifier:       notify.NewLogNotifier(logger),
		assetCatalog:   assets.NewLogAssetCatalog(logger),
		perms:          allowAllPermissions{},
		pricingService: services.NewPricingService(baseRates, transportRates),
		baseRates:      baseRates,
		transportRates: transportRates,
	}
}

// BaseRates exposes the static base rate catalog for seeding.
func (c *CompositionRoot) BaseRates() *rates.StaticBaseRateCatalog {
	return c.baseRates
}

// TransportRates exposes the static transport rate catalog for seeding.
func (c *CompositionRoot) TransportRates() *rates.StaticTransportRateCatalog {
	return c.transportRates
}

// AutoMigrate creates or updates the database schema.
func (c *CompositionRoot) AutoMigrate() error {
	return c.gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryDTO{},
		&orderrepo.LineItemDTO{},
		&requestrepo.RequestDTO{},
		&reskinrepo.RequestDTO{},
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) lineItemRequestUoWFactory() commands.LineItemRequestUoWFactory {
	return FuncLineItemRequestUoWFactory(func() commands.LineItemRequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reskinRequestUoWFactory() commands.ReskinRequestUoWFactory {
	return FuncReskinRequestUoWFactory(func() commands.ReskinRequestUoW {
		return c.uowFactory.Create()
	})
}

// CreateHTTPHandlers wires every command and query handler for the server.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:    commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		Transition:     commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.perms, c.notifier),
		Submit:         commands.NewSubmitForApprovalCommandHandler(c.orderUoWFactory(), c.perms, c.notifier),
		AssignWindows:  commands.NewAssignWindowsCommandHandler(c.orderUoWFactory()),
		SetJobNumber:   commands.NewSetJobNumberCommandHandler(c.orderUoWFactory()),
		MarkInvoiced:   commands.NewMarkOrderInvoicedCommandHandler(c.orderUoWFactory()),
		RecordPayment:  commands.NewRecordPaymentCommandHandler(c.orderUoWFactory(), c.notifier),
		AddLineItem:    commands.NewAddCatalogLineItemCommandHandler(c.orderUoWFactory(), ledgerEditPolicy),
		RemoveLineItem: commands.NewRemoveLineItemCommandHandler(c.orderUoWFactory(), ledgerEditPolicy),
		Reprice:        commands.NewRepriceOrderCommandHandler(c.orderUoWFactory(), c.pricingService),
		ApproveRequest: commands.NewApproveLineItemRequestCommandHandler(c.lineItemRequestUoWFactory(), ledgerEditPolicy),
		RejectRequest:  commands.NewRejectLineItemRequestCommandHandler(c.lineItemRequestUoWFactory()),
		CompleteReskin: commands.NewCompleteReskinCommandHandler(c.reskinRequestUoWFactory(), c.assetCatalog),
		CancelReskin:   commands.NewCancelReskinCommandHandler(c.reskinRequestUoWFactory()),

		GetOrder:        queries.NewGetOrderQueryHandler(c.gormDB),
		OrdersInStatus:  queries.NewGetOrdersInStatusQueryHandler(c.gormDB),
		UnpaidInvoices:  queries.NewGetInvoicedUnpaidOrdersQueryHandler(c.gormDB),
		UpcomingPickups: queries.NewGetUpcomingPickupsQueryHandler(c.gormDB),
	}
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager(leadTime time.Duration) *jobs.JobManager {
	tracker := c.uowFactory.Create()
	repo := tracker.OrderRepository()

	reminder := jobs.NewReturnReminderJob(repo, c.notifier, leadTime, c.logger)
	return jobs.NewJobManager(reminder)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLineItemRequestUoWFactory func() commands.LineItemRequestUoW

func (f FuncLineItemRequestUoWFactory) Create() commands.LineItemRequestUoW {
	return f()
}

type FuncReskinRequestUoWFactory func() commands.ReskinRequestUoW

func (f FuncReskinRequestUoWFactory) Create() commands.ReskinRequestUoW {
	return f()
}
