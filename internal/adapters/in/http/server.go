// Package http exposes the order lifecycle over a REST API. Every route
// binds a request body, builds the corresponding guarded command or query,
// and maps domain error kinds onto HTTP status codes.
package http

import (
	"net/http"
	"time"

	"rentops/internal/core/application/usecases/commands"
	"rentops/internal/core/application/usecases/queries"
	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/core/domain/model/pricing"
	"rentops/internal/core/domain/services"
	"rentops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Handlers bundles the application handlers the server dispatches to.
type Handlers struct {
	CreateOrder    commands.CreateOrderCommandHandler
	Transition     commands.TransitionOrderCommandHandler
	Submit         commands.SubmitForApprovalCommandHandler
	AssignWindows  commands.AssignWindowsCommandHandler
	SetJobNumber   commands.SetJobNumberCommandHandler
	MarkInvoiced   commands.MarkOrderInvoicedCommandHandler
	RecordPayment  commands.RecordPaymentCommandHandler
	AddLineItem    commands.AddCatalogLineItemCommandHandler
	RemoveLineItem commands.RemoveLineItemCommandHandler
	Reprice        commands.RepriceOrderCommandHandler
	ApproveRequest commands.ApproveLineItemRequestCommandHandler
	RejectRequest  commands.RejectLineItemRequestCommandHandler
	CompleteReskin commands.CompleteReskinCommandHandler
	CancelReskin   commands.CancelReskinCommandHandler

	GetOrder        queries.GetOrderQueryHandler
	OrdersInStatus  queries.GetOrdersInStatusQueryHandler
	UnpaidInvoices  queries.GetInvoicedUnpaidOrdersQueryHandler
	UpcomingPickups queries.GetUpcomingPickupsQueryHandler
}

// Server coordinates between HTTP routes and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given application handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersInStatus)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/transition", s.TransitionOrder)
	api.POST("/orders/:orderID/submit", s.SubmitForApproval)
	api.POST("/orders/:orderID/windows", s.AssignWindows)
	api.PUT("/orders/:orderID/job-number", s.SetJobNumber)
	api.POST("/orders/:orderID/invoice", s.MarkInvoiced)
	api.POST("/orders/:orderID/payment", s.RecordPayment)
	api.POST("/orders/:orderID/line-items", s.AddLineItem)
	api.DELETE("/orders/:orderID/line-items/:itemID", s.RemoveLineItem)
	api.POST("/orders/:orderID/reprice", s.RepriceOrder)

	api.POST("/line-item-requests/:requestID/approve", s.ApproveLineItemRequest)
	api.POST("/line-item-requests/:requestID/reject", s.RejectLineItemRequest)
	api.POST("/reskin-requests/:requestID/complete", s.CompleteReskin)
	api.POST("/reskin-requests/:requestID/cancel", s.CancelReskin)

	api.GET("/invoices/outstanding", s.GetOutstandingInvoices)
	api.GET("/pickups/upcoming", s.GetUpcomingPickups)
}

func fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// actorID resolves the acting user from the X-Actor-ID header. Real
// deployments resolve it from the authenticated session; the header keeps
// the API honest about who performs audited operations.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get("X-Actor-ID")
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("X-Actor-ID header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("X-Actor-ID header", err)
	}
	return id, nil
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	actor, err := actorID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, companyID, actor, order.Details{
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		VenueName:    req.VenueName,
		VenueAddress: req.VenueAddress,
		EventStart:   req.EventStart,
		EventEnd:     req.EventEnd,
	})
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetOrdersInStatus handles GET /api/v1/orders?status=PricingReview.
func (s *Server) GetOrdersInStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetOrdersInStatusQuery(status)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.handlers.OrdersInStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// TransitionOrder handles POST /api/v1/orders/:orderID/transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	actor, err := actorID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor, req.Notes)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.Transition.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitForApproval handles POST /api/v1/orders/:orderID/submit.
func (s *Server) SubmitForApproval(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	actor, err := actorID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req SubmitForApprovalRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewSubmitForApprovalCommand(orderID, target, actor)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.Submit.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignWindows handles POST /api/v1/orders/:orderID/windows.
func (s *Server) AssignWindows(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	var req AssignWindowsRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	delivery, err := order.NewWindow(req.DeliveryStart, req.DeliveryEnd)
	if err != nil {
		return fail(ctx, err)
	}

	pickup, err := order.NewWindow(req.PickupStart, req.PickupEnd)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAssignWindowsCommand(orderID, delivery, pickup)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.AssignWindows.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetJobNumber handles PUT /api/v1/orders/:orderID/job-number.
func (s *Server) SetJobNumber(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	var req SetJobNumberRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewSetJobNumberCommand(orderID, req.JobNumber)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.SetJobNumber.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkInvoiced handles POST /api/v1/orders/:orderID/invoice.
func (s *Server) MarkInvoiced(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	var req MarkInvoicedRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewMarkOrderInvoicedCommand(orderID, req.InvoiceNumber, req.InvoicedAt)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.MarkInvoiced.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/:orderID/payment.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, order.Payment{
		Method:    req.Method,
		Reference: req.Reference,
		Date:      req.Date,
		Notes:     req.Notes,
	})
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddLineItem handles POST /api/v1/orders/:orderID/line-items.
func (s *Server) AddLineItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	var req AddLineItemRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	category, err := lineitem.CategoryFromString(req.Category)
	if err != nil {
		return fail(ctx, err)
	}

	billingMode, err := lineitem.BillingModeFromString(req.BillingMode)
	if err != nil {
		return fail(ctx, err)
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("quantity", err))
	}

	unitRate, err := kernel.NewMoneyFromString(req.UnitRate)
	if err != nil {
		return fail(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddCatalogLineItemCommand(
		orderID, itemID, req.Description, category, billingMode,
		quantity, req.Unit, unitRate, req.Metadata,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.AddLineItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddLineItemResponse{ID: itemID.String()})
}

// RemoveLineItem handles DELETE /api/v1/orders/:orderID/line-items/:itemID.
func (s *Server) RemoveLineItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRemoveLineItemCommand(orderID, itemID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.RemoveLineItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RepriceOrder handles POST /api/v1/orders/:orderID/reprice.
func (s *Server) RepriceOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	var req RepriceRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	volume, err := kernel.NewVolumeFromString(req.Volume)
	if err != nil {
		return fail(ctx, err)
	}

	tripType, err := pricing.TripTypeFromString(req.TripType)
	if err != nil {
		return fail(ctx, err)
	}

	margin, err := decimal.NewFromString(req.MarginPercent)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("marginPercent", err))
	}

	spec := services.TransportSpec{
		Country:     req.Country,
		City:        req.City,
		Area:        req.Area,
		TripType:    tripType,
		VehicleType: req.VehicleType,
	}
	if req.FinalRate != nil {
		finalRate, rateErr := kernel.NewMoneyFromString(*req.FinalRate)
		if rateErr != nil {
			return fail(ctx, rateErr)
		}
		spec.FinalRate = &finalRate
	}

	cmd, err := commands.NewRepriceOrderCommand(orderID, volume, spec, margin)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.Reprice.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveLineItemRequest handles POST /api/v1/line-item-requests/:requestID/approve.
func (s *Server) ApproveLineItemRequest(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return fail(ctx, err)
	}

	var req ApproveLineItemRequestRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	category, err := lineitem.CategoryFromString(req.Category)
	if err != nil {
		return fail(ctx, err)
	}

	billingMode, err := lineitem.BillingModeFromString(req.BillingMode)
	if err != nil {
		return fail(ctx, err)
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("quantity", err))
	}

	unitRate, err := kernel.NewMoneyFromString(req.UnitRate)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewApproveLineItemRequestCommand(requestID, kernel.NewUUID(), lineitem.Overrides{
		Description: req.Description,
		Category:    category,
		Quantity:    quantity,
		Unit:        req.Unit,
		UnitRate:    unitRate,
		BillingMode: billingMode,
	})
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.ApproveRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectLineItemRequest handles POST /api/v1/line-item-requests/:requestID/reject.
func (s *Server) RejectLineItemRequest(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return fail(ctx, err)
	}

	var req RejectLineItemRequestRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRejectLineItemRequestCommand(requestID, req.AdminNote)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.RejectRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteReskin handles POST /api/v1/reskin-requests/:requestID/complete.
func (s *Server) CompleteReskin(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return fail(ctx, err)
	}

	var req CompleteReskinRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cost, err := kernel.NewMoneyFromString(req.Cost)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCompleteReskinCommand(
		requestID, kernel.NewUUID(), req.NewAssetName, req.CompletionPhotos, cost,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.CompleteReskin.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelReskin handles POST /api/v1/reskin-requests/:requestID/cancel.
func (s *Server) CancelReskin(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return fail(ctx, err)
	}

	var req CancelReskinRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCancelReskinCommand(requestID, req.Reason)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.CancelReskin.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOutstandingInvoices handles GET /api/v1/invoices/outstanding.
func (s *Server) GetOutstandingInvoices(ctx echo.Context) error {
	resp, err := s.handlers.UnpaidInvoices.Handle(
		ctx.Request().Context(), queries.NewGetInvoicedUnpaidOrdersQuery(),
	)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetUpcomingPickups handles GET /api/v1/pickups/upcoming?before=RFC3339.
func (s *Server) GetUpcomingPickups(ctx echo.Context) error {
	deadline, err := time.Parse(time.RFC3339, ctx.QueryParam("before"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("before", err))
	}

	query, err := queries.NewGetUpcomingPickupsQuery(deadline)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.handlers.UpcomingPickups.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}
