package http

import "time"

// Error is the uniform problem payload returned on any failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for opening a draft order.
type CreateOrderRequest struct {
	CompanyID    string    `json:"companyId"`
	ContactName  string    `json:"contactName"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	VenueName    string    `json:"venueName"`
	VenueAddress string    `json:"venueAddress"`
	EventStart   time.Time `json:"eventStart"`
	EventEnd     time.Time `json:"eventEnd"`
}

// CreateOrderResponse returns the identifiers of the created draft.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// TransitionRequest is the payload for moving an order along its lifecycle.
type TransitionRequest struct {
	Target string `json:"target"`
	Notes  string `json:"notes"`
}

// SubmitForApprovalRequest routes a priced order to client review or
// internal approval.
type SubmitForApprovalRequest struct {
	Target string `json:"target"`
}

// AssignWindowsRequest is the payload for scheduling delivery and pickup.
type AssignWindowsRequest struct {
	DeliveryStart time.Time `json:"deliveryStart"`
	DeliveryEnd   time.Time `json:"deliveryEnd"`
	PickupStart   time.Time `json:"pickupStart"`
	PickupEnd     time.Time `json:"pickupEnd"`
}

// SetJobNumberRequest sets or clears the operator-assigned job number.
type SetJobNumberRequest struct {
	JobNumber *string `json:"jobNumber"`
}

// MarkInvoicedRequest records the raised invoice.
type MarkInvoicedRequest struct {
	InvoiceNumber string    `json:"invoiceNumber"`
	InvoicedAt    time.Time `json:"invoicedAt"`
}

// RecordPaymentRequest settles the invoice.
type RecordPaymentRequest struct {
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
}

// AddLineItemRequest attaches a catalog charge to an order's ledger.
type AddLineItemRequest struct {
	Description string            `json:"description"`
	Category    string            `json:"category"`
	BillingMode string            `json:"billingMode"`
	Quantity    string            `json:"quantity"`
	Unit        string            `json:"unit"`
	UnitRate    string            `json:"unitRate"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// AddLineItemResponse returns the identifier of the attached item.
type AddLineItemResponse struct {
	ID string `json:"id"`
}

// RepriceRequest resolves fresh rates and recomputes the breakdown.
type RepriceRequest struct {
	Volume        string  `json:"volume"`
	Country       string  `json:"country"`
	City          string  `json:"city"`
	Area          string  `json:"area"`
	TripType      string  `json:"tripType"`
	VehicleType   string  `json:"vehicleType"`
	FinalRate     *string `json:"finalRate,omitempty"`
	MarginPercent string  `json:"marginPercent"`
}

// ApproveLineItemRequestRequest approves a client ask with admin overrides.
type ApproveLineItemRequestRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	BillingMode string `json:"billingMode"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	UnitRate    string `json:"unitRate"`
}

// RejectLineItemRequestRequest rejects a client ask with a reviewer note.
type RejectLineItemRequestRequest struct {
	AdminNote string `json:"adminNote"`
}

// CompleteReskinRequest closes a reskin request with its outcome.
type CompleteReskinRequest struct {
	NewAssetName     string   `json:"newAssetName"`
	CompletionPhotos []string `json:"completionPhotos"`
	Cost             string   `json:"cost"`
}

// CancelReskinRequest cancels a pending reskin request.
type CancelReskinRequest struct {
	Reason string `json:"reason"`
}
