package queries

import (
	"errors"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/guard"
)

var ErrGetInvoicedUnpaidOrdersQueryIsNotConstructed = errors.New(
	"GetInvoicedUnpaidOrdersQuery must be created via NewGetInvoicedUnpaidOrdersQuery constructor",
)

// GetInvoicedUnpaidOrdersQuery retrieves every order that has been invoiced
// but not yet paid, the receivables list the finance team chases.
type GetInvoicedUnpaidOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInvoicedUnpaidOrdersQuery creates a query for outstanding invoices.
func NewGetInvoicedUnpaidOrdersQuery() GetInvoicedUnpaidOrdersQuery {
	return GetInvoicedUnpaidOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInvoicedUnpaidOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoicedUnpaidOrdersQueryIsNotConstructed)
}

// GetInvoicedUnpaidOrdersQueryResponse is one outstanding invoice.
type GetInvoicedUnpaidOrdersQueryResponse struct {
	ID            kernel.UUID
	Code          string
	CompanyID     kernel.UUID
	ContactName   string
	ContactEmail  string
	InvoiceNumber string
	InvoicedAt    time.Time
	Status        string
}
