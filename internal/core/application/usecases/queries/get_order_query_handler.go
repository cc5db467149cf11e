package queries

import (
	"context"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/core/domain/model/pricing"
	"rentops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's detail from the database. The
// breakdown is recomputed from the stored pricing inputs through the same
// composer the write side uses, so the read model can never show a total
// the inputs do not produce.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	ID              uuid.UUID
	Code            string
	CompanyID       uuid.UUID
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	VenueName       string
	VenueAddress    string
	EventStart      time.Time
	EventEnd        time.Time
	Status          int
	FinancialStatus int
	JobNumber       *string
	DeliveryStart   *time.Time
	DeliveryEnd     *time.Time
	PickupStart     *time.Time
	PickupEnd       *time.Time
	InvoiceNumber   string
	InvoicedAt      *time.Time
	InvoicePaidAt   *time.Time

	BaseVolume           *decimal.Decimal
	BaseRate             *decimal.Decimal
	TransportRegion      *string
	TransportTripType    *int
	TransportVehicleType *string
	TransportBaseRate    *decimal.Decimal
	TransportFinalRate   *decimal.Decimal
	MarginPercent        decimal.Decimal

	Version int64
}

type historyRow struct {
	Status    int
	Timestamp time.Time
	ActorID   uuid.UUID
	Notes     string
}

type lineItemRow struct {
	ID          uuid.UUID
	Description string
	Category    int
	BillingMode int
	Quantity    decimal.Decimal
	Unit        string
	UnitRate    decimal.Decimal
}

// Handle executes the order detail query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, code, company_id,
			contact_name, contact_email, contact_phone,
			venue_name, venue_address, event_start, event_end,
			status, financial_status, job_number,
			delivery_start, delivery_end, pickup_start, pickup_end,
			invoice_number, invoiced_at, invoice_paid_at,
			base_volume, base_rate,
			transport_region, transport_trip_type, transport_vehicle_type,
			transport_base_rate, transport_final_rate,
			margin_percent, version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&row).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if row.ID == uuid.Nil {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var historyRows []historyRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT status, timestamp, actor_id, notes
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY seq
	`, row.ID).Scan(&historyRows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	var itemRows []lineItemRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT id, description, category, billing_mode, quantity, unit, unit_rate
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY description
	`, row.ID).Scan(&itemRows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return buildOrderResponse(row, historyRows, itemRows)
}

func buildOrderResponse(row orderRow, historyRows []historyRow, itemRows []lineItemRow) (GetOrderQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	companyID, err := kernel.UUIDFromBytes(row.CompanyID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:              id,
		Code:            row.Code,
		CompanyID:       companyID,
		ContactName:     row.ContactName,
		ContactEmail:    row.ContactEmail,
		ContactPhone:    row.ContactPhone,
		VenueName:       row.VenueName,
		VenueAddress:    row.VenueAddress,
		EventStart:      row.EventStart,
		EventEnd:        row.EventEnd,
		Status:          order.Status(row.Status).String(),
		FinancialStatus: order.FinancialStatus(row.FinancialStatus).String(),
		JobNumber:       row.JobNumber,
		InvoiceNumber:   row.InvoiceNumber,
		InvoicedAt:      row.InvoicedAt,
		InvoicePaidAt:   row.InvoicePaidAt,
		Version:         row.Version,
	}

	if row.DeliveryStart != nil && row.DeliveryEnd != nil {
		resp.DeliveryWindow = &WindowResponse{Start: *row.DeliveryStart, End: *row.DeliveryEnd}
	}
	if row.PickupStart != nil && row.PickupEnd != nil {
		resp.PickupWindow = &WindowResponse{Start: *row.PickupStart, End: *row.PickupEnd}
	}

	for _, entry := range historyRows {
		actorID, actorErr := kernel.UUIDFromBytes(entry.ActorID[:])
		if actorErr != nil {
			return GetOrderQueryResponse{}, actorErr
		}
		resp.History = append(resp.History, HistoryEntryResponse{
			Status:    order.Status(entry.Status).String(),
			Timestamp: entry.Timestamp,
			ActorID:   actorID,
			Notes:     entry.Notes,
		})
	}

	items := make([]*lineitem.LineItem, 0, len(itemRows))
	for _, itemRow := range itemRows {
		itemID, itemErr := kernel.UUIDFromBytes(itemRow.ID[:])
		if itemErr != nil {
			return GetOrderQueryResponse{}, itemErr
		}

		item, itemErr := lineitem.RestoreLineItem(
			itemID, itemRow.Description,
			lineitem.Category(itemRow.Category), lineitem.BillingMode(itemRow.BillingMode),
			itemRow.Quantity, itemRow.Unit, kernel.NewMoney(itemRow.UnitRate), nil, nil,
		)
		if itemErr != nil {
			return GetOrderQueryResponse{}, itemErr
		}
		items = append(items, item)

		resp.LineItems = append(resp.LineItems, LineItemResponse{
			ID:          itemID,
			Description: item.Description(),
			Category:    item.Category().String(),
			BillingMode: item.BillingMode().String(),
			Quantity:    item.Quantity().String(),
			Unit:        item.Unit(),
			UnitRate:    item.UnitRate().String(),
			LineTotal:   item.LineTotal().String(),
		})
	}

	breakdown, err := composeBreakdown(row, items)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Breakdown = breakdown

	return resp, nil
}

func composeBreakdown(row orderRow, items []*lineitem.LineItem) (*BreakdownResponse, error) {
	if row.BaseVolume == nil || row.BaseRate == nil || row.TransportRegion == nil {
		return nil, nil
	}

	volume, err := kernel.NewVolume(*row.BaseVolume)
	if err != nil {
		return nil, err
	}

	base, err := pricing.NewBaseOperations(volume, kernel.NewMoney(*row.BaseRate))
	if err != nil {
		return nil, err
	}

	tripType := pricing.TripTypeUnknown
	if row.TransportTripType != nil {
		tripType = pricing.TripType(*row.TransportTripType)
	}

	vehicleType := ""
	if row.TransportVehicleType != nil {
		vehicleType = *row.TransportVehicleType
	}

	baseRate, finalRate := decimal.Zero, decimal.Zero
	if row.TransportBaseRate != nil {
		baseRate = *row.TransportBaseRate
	}
	if row.TransportFinalRate != nil {
		finalRate = *row.TransportFinalRate
	}

	transport, err := pricing.NewTransport(
		*row.TransportRegion, tripType, vehicleType,
		kernel.NewMoney(baseRate), kernel.NewMoney(finalRate),
	)
	if err != nil {
		return nil, err
	}

	breakdown := pricing.Compose(base, transport, items, row.MarginPercent)
	return &BreakdownResponse{
		BaseVolume:        base.Volume().String(),
		BaseRate:          base.Rate().String(),
		BaseTotal:         base.Total().String(),
		TransportRegion:   transport.Region(),
		TransportTripType: transport.TripType().String(),
		TransportRate:     transport.FinalRate().String(),
		LogisticsSubtotal: breakdown.LogisticsSubtotal().String(),
		MarginPercent:     breakdown.Margin().Percent().String(),
		MarginAmount:      breakdown.Margin().Amount().String(),
		FinalTotal:        breakdown.FinalTotal().String(),
	}, nil
}
