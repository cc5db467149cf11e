package queries

import (
	"errors"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/pkg/guard"
)

var ErrGetOrdersInStatusQueryIsNotConstructed = errors.New(
	"GetOrdersInStatusQuery must be created via NewGetOrdersInStatusQuery constructor",
)

// GetOrdersInStatusQuery retrieves all orders currently in one lifecycle
// status, the backing query for admin work queues such as the pricing
// review list or the approval inbox.
type GetOrdersInStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersInStatusQuery creates a query for orders in the given status.
func NewGetOrdersInStatusQuery(status order.Status) (GetOrdersInStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersInStatusQuery{}, err
	}

	return GetOrdersInStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersInStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersInStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter by.
func (q GetOrdersInStatusQuery) Status() order.Status {
	return q.status
}

// GetOrdersInStatusQueryResponse is one row of a status work queue.
type GetOrdersInStatusQueryResponse struct {
	ID              kernel.UUID
	Code            string
	CompanyID       kernel.UUID
	ContactName     string
	VenueName       string
	EventStart      time.Time
	Status          string
	FinancialStatus string
}
