// Package queries contains read operations over the order store. Queries
// bypass the repositories and project table rows straight into response
// structs, the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail of one order: status, history,
// ledger, and the priced breakdown when pricing inputs were set.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's detail.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// WindowResponse is a scheduled time window.
type WindowResponse struct {
	Start time.Time
	End   time.Time
}

// HistoryEntryResponse is one entry of the status audit trail.
type HistoryEntryResponse struct {
	Status    string
	Timestamp time.Time
	ActorID   kernel.UUID
	Notes     string
}

// LineItemResponse is one row of the order's ledger. LineTotal is zero for
// non-billable and complimentary rows.
type LineItemResponse struct {
	ID          kernel.UUID
	Description string
	Category    string
	BillingMode string
	Quantity    string
	Unit        string
	UnitRate    string
	LineTotal   string
}

// BreakdownResponse is the priced quote of an order. All amounts are
// fixed-point decimal strings.
type BreakdownResponse struct {
	BaseVolume        string
	BaseRate          string
	BaseTotal         string
	TransportRegion   string
	TransportTripType string
	TransportRate     string
	LogisticsSubtotal string
	MarginPercent     string
	MarginAmount      string
	FinalTotal        string
}

// GetOrderQueryResponse is the full order detail read model.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Code            string
	CompanyID       kernel.UUID
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	VenueName       string
	VenueAddress    string
	EventStart      time.Time
	EventEnd        time.Time
	Status          string
	FinancialStatus string
	JobNumber       *string
	DeliveryWindow  *WindowResponse
	PickupWindow    *WindowResponse
	InvoiceNumber   string
	InvoicedAt      *time.Time
	InvoicePaidAt   *time.Time
	Breakdown       *BreakdownResponse
	History         []HistoryEntryResponse
	LineItems       []LineItemResponse
	Version         int64
}
