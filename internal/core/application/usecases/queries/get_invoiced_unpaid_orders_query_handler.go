package queries

import (
	"context"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInvoicedUnpaidOrdersQueryHandler retrieves the outstanding invoice
// list from the database.
type GetInvoicedUnpaidOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoicedUnpaidOrdersQueryHandler creates a handler for outstanding
// invoice queries.
func NewGetInvoicedUnpaidOrdersQueryHandler(db *gorm.DB) GetInvoicedUnpaidOrdersQueryHandler {
	return GetInvoicedUnpaidOrdersQueryHandler{db: db}
}

// Handle executes the query. The oldest invoices come first.
func (h GetInvoicedUnpaidOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetInvoicedUnpaidOrdersQuery,
) ([]GetInvoicedUnpaidOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]GetInvoicedUnpaidOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			company_id,
			contact_name,
			contact_email,
			invoice_number,
			invoiced_at,
			status
		FROM orders
		WHERE financial_status = ?
		ORDER BY invoiced_at
	`, int(order.Invoiced)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, companyID uuid.UUID
			resp          GetInvoicedUnpaidOrdersQueryResponse
			invoicedAt    time.Time
			status        int
		)

		err = rows.Scan(
			&id,
			&resp.Code,
			&companyID,
			&resp.ContactName,
			&resp.ContactEmail,
			&resp.InvoiceNumber,
			&invoicedAt,
			&status,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.CompanyID, err = kernel.UUIDFromBytes(companyID[:])
		if err != nil {
			return nil, err
		}

		resp.InvoicedAt = invoicedAt
		resp.Status = order.Status(status).String()

		invoices = append(invoices, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
