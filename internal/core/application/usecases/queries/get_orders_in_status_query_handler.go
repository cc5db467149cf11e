package queries

import (
	"context"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersInStatusQueryHandler projects status work queues straight from
// the orders table.
type GetOrdersInStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersInStatusQueryHandler creates a handler for status queue queries.
func NewGetOrdersInStatusQueryHandler(db *gorm.DB) GetOrdersInStatusQueryHandler {
	return GetOrdersInStatusQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by event start so the
// soonest events surface first in the queue.
func (h GetOrdersInStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersInStatusQuery,
) ([]GetOrdersInStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersInStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			company_id,
			contact_name,
			venue_name,
			event_start,
			status,
			financial_status
		FROM orders
		WHERE status = ?
		ORDER BY event_start, code
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, companyID uuid.UUID
			resp          GetOrdersInStatusQueryResponse
			eventStart    time.Time
			status        int
			financial     int
		)

		err = rows.Scan(
			&id,
			&resp.Code,
			&companyID,
			&resp.ContactName,
			&resp.VenueName,
			&eventStart,
			&status,
			&financial,
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

		resp.EventStart = eventStart
		resp.Status = order.Status(status).String()
		resp.FinancialStatus = order.FinancialStatus(financial).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
