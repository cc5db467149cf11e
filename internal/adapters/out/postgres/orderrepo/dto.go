// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and the
// relational representation spread over the orders, order_status_history,
// and order_line_items tables.
package orderrepo

import (
	"encoding/json"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Pricing inputs are nullable: an order that never reached
// pricing review has no breakdown. The breakdown itself is not stored, it
// is recomputed from the inputs on restore so a stale total can never be
// read back.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"uniqueIndex"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`

	ContactName  string
	ContactEmail string
	ContactPhone string
	VenueName    string
	VenueAddress string
	EventStart   time.Time
	EventEnd     time.Time

	Status          int `gorm:"index"`
	FinancialStatus int `gorm:"index"`

	JobNumber *string

	DeliveryStart *time.Time
	DeliveryEnd   *time.Time
	PickupStart   *time.Time `gorm:"index"`
	PickupEnd     *time.Time

	InvoiceNumber string
	InvoicedAt    *time.Time
	InvoicePaidAt *time.Time

	PaymentMethod    string
	PaymentReference string
	PaymentDate      *time.Time
	PaymentNotes     string

	BaseVolume           *decimal.Decimal `gorm:"type:numeric"`
	BaseRate             *decimal.Decimal `gorm:"type:numeric"`
	TransportRegion      *string
	TransportTripType    *int
	TransportVehicleType *string
	TransportBaseRate    *decimal.Decimal `gorm:"type:numeric"`
	TransportFinalRate   *decimal.Decimal `gorm:"type:numeric"`
	MarginPercent        decimal.Decimal  `gorm:"type:numeric"`

	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time

	History   []HistoryDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	LineItems []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryDTO represents one entry of an order's status history. Entries
// are append-only; the sequence column preserves insertion order.
type HistoryDTO struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	Timestamp time.Time
	ActorID   uuid.UUID `gorm:"type:uuid"`
	Notes     string
}

// TableName specifies the database table name for history entries.
func (HistoryDTO) TableName() string {
	return "order_status_history"
}

// LineItemDTO represents one row of an order's line item ledger. The
// metadata map is serialized to JSON.
type LineItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	Description     string
	Category        int
	BillingMode     int
	Quantity        decimal.Decimal `gorm:"type:numeric"`
	Unit            string
	UnitRate        decimal.Decimal `gorm:"type:numeric"`
	Metadata        string
	ReskinRequestID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for line item rows.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	details := o.Details()
	dto := OrderDTO{
		ID:              o.ID().Bytes(),
		Code:            o.Code(),
		CompanyID:       o.CompanyID().Bytes(),
		ContactName:     details.ContactName,
		ContactEmail:    details.ContactEmail,
		ContactPhone:    details.ContactPhone,
		VenueName:       details.VenueName,
		VenueAddress:    details.VenueAddress,
		EventStart:      details.EventStart,
		EventEnd:        details.EventEnd,
		Status:          int(o.Status()),
		FinancialStatus: int(o.FinancialStatus()),
		JobNumber:       o.JobNumber(),
		InvoiceNumber:   o.InvoiceNumber(),
		InvoicedAt:      o.InvoicedAt(),
		InvoicePaidAt:   o.InvoicePaidAt(),
		MarginPercent:   o.MarginPercent(),
		Version:         o.Version(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}

	if w := o.DeliveryWindow(); w != nil {
		start, end := w.Start(), w.End()
		dto.DeliveryStart, dto.DeliveryEnd = &start, &end
	}
	if w := o.PickupWindow(); w != nil {
		start, end := w.Start(), w.End()
		dto.PickupStart, dto.PickupEnd = &start, &end
	}

	if p := o.Payment(); p != nil {
		date := p.Date
		dto.PaymentMethod = p.Method
		dto.PaymentReference = p.Reference
		dto.PaymentDate = &date
		dto.PaymentNotes = p.Notes
	}

	if base := o.BaseOperations(); base != nil {
		volume := base.Volume().Value()
		rate := base.Rate().Amount()
		dto.BaseVolume, dto.BaseRate = &volume, &rate
	}
	if transport := o.Transport(); transport != nil {
		region := transport.Region()
		tripType := int(transport.TripType())
		vehicleType := transport.VehicleType()
		baseRate := transport.BaseRate().Amount()
		finalRate := transport.FinalRate().Amount()
		dto.TransportRegion = &region
		dto.TransportTripType = &tripType
		dto.TransportVehicleType = &vehicleType
		dto.TransportBaseRate = &baseRate
		dto.TransportFinalRate = &finalRate
	}

	for _, entry := range o.History() {
		dto.History = append(dto.History, HistoryDTO{
			OrderID:   dto.ID,
			Status:    int(entry.Status()),
			Timestamp: entry.Timestamp(),
			ActorID:   entry.ActorID().Bytes(),
			Notes:     entry.Notes(),
		})
	}

	for _, item := range o.LineItems() {
		itemDTO, err := lineItemFromDomain(dto.ID, item)
		if err != nil {
			return OrderDTO{}, err
		}
		dto.LineItems = append(dto.LineItems, itemDTO)
	}

	return dto, nil
}

func lineItemFromDomain(orderID uuid.UUID, item *lineitem.LineItem) (LineItemDTO, error) {
	metadata := ""
	if len(item.Metadata()) > 0 {
		raw, err := json.Marshal(item.Metadata())
		if err != nil {
			return LineItemDTO{}, err
		}
		metadata = string(raw)
	}

	var reskinRequestID *uuid.UUID
	if id := item.ReskinRequestID(); id != nil {
		raw := id.Bytes()
		reskinRequestID = &raw
	}

	return LineItemDTO{
		ID:              item.ID().Bytes(),
		OrderID:         orderID,
		Description:     item.Description(),
		Category:        int(item.Category()),
		BillingMode:     int(item.BillingMode()),
		Quantity:        item.Quantity(),
		Unit:            item.Unit(),
		UnitRate:        item.UnitRate().Amount(),
		Metadata:        metadata,
		ReskinRequestID: reskinRequestID,
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	details := order.Details{
		ContactName:  dto.ContactName,
		ContactEmail: dto.ContactEmail,
		ContactPhone: dto.ContactPhone,
		VenueName:    dto.VenueName,
		VenueAddress: dto.VenueAddress,
		EventStart:   dto.EventStart,
		EventEnd:     dto.EventEnd,
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entry := range dto.History {
		actorID, actorErr := kernel.UUIDFromBytes(entry.ActorID[:])
		if actorErr != nil {
			return nil, actorErr
		}
		history = append(history, order.NewHistoryEntry(
			order.Status(entry.Status), entry.Timestamp, actorID, entry.Notes,
		))
	}

	var deliveryWindow, pickupWindow *order.Window
	if dto.DeliveryStart != nil && dto.DeliveryEnd != nil {
		w, windowErr := order.NewWindow(*dto.DeliveryStart, *dto.DeliveryEnd)
		if windowErr != nil {
			return nil, windowErr
		}
		deliveryWindow = &w
	}
	if dto.PickupStart != nil && dto.PickupEnd != nil {
		w, windowErr := order.NewWindow(*dto.PickupStart, *dto.PickupEnd)
		if windowErr != nil {
			return nil, windowErr
		}
		pickupWindow = &w
	}

	var payment *order.Payment
	if dto.PaymentDate != nil {
		payment = &order.Payment{
			Method:    dto.PaymentMethod,
			Reference: dto.PaymentReference,
			Date:      *dto.PaymentDate,
			Notes:     dto.PaymentNotes,
		}
	}

	var baseOperations *pricing.BaseOperations
	if dto.BaseVolume != nil && dto.BaseRate != nil {
		volume, volumeErr := kernel.NewVolume(*dto.BaseVolume)
		if volumeErr != nil {
			return nil, volumeErr
		}
		base, baseErr := pricing.NewBaseOperations(volume, kernel.NewMoney(*dto.BaseRate))
		if baseErr != nil {
			return nil, baseErr
		}
		baseOperations = &base
	}

	var transport *pricing.Transport
	if dto.TransportRegion != nil && dto.TransportTripType != nil {
		t, transportErr := pricing.NewTransport(
			*dto.TransportRegion,
			pricing.TripType(*dto.TransportTripType),
			derefString(dto.TransportVehicleType),
			kernel.NewMoney(derefDecimal(dto.TransportBaseRate)),
			kernel.NewMoney(derefDecimal(dto.TransportFinalRate)),
		)
		if transportErr != nil {
			return nil, transportErr
		}
		transport = &t
	}

	lineItems := make([]*lineitem.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	return order.RestoreOrder(
		id, dto.Code, companyID, details,
		order.Status(dto.Status), history,
		order.FinancialStatus(dto.FinancialStatus),
		dto.JobNumber, deliveryWindow, pickupWindow,
		dto.InvoiceNumber, dto.InvoicedAt, dto.InvoicePaidAt, payment,
		baseOperations, transport, dto.MarginPercent, lineItems,
		dto.Version, dto.CreatedAt, dto.UpdatedAt,
	)
}

func lineItemToDomain(dto LineItemDTO) (*lineitem.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var metadata map[string]string
	if dto.Metadata != "" {
		if err = json.Unmarshal([]byte(dto.Metadata), &metadata); err != nil {
			return nil, err
		}
	}

	var reskinRequestID *kernel.UUID
	if dto.ReskinRequestID != nil {
		requestID, requestErr := kernel.UUIDFromBytes((*dto.ReskinRequestID)[:])
		if requestErr != nil {
			return nil, requestErr
		}
		reskinRequestID = &requestID
	}

	return lineitem.RestoreLineItem(
		id, dto.Description,
		lineitem.Category(dto.Category), lineitem.BillingMode(dto.BillingMode),
		dto.Quantity, dto.Unit, kernel.NewMoney(dto.UnitRate),
		metadata, reskinRequestID,
	)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
