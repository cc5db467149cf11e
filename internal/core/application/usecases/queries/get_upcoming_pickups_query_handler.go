package queries

import (
	"context"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUpcomingPickupsQueryHandler retrieves scheduled pickups due before a
// cutoff. Only orders still out in the field qualify, and only when a
// pickup window has actually been assigned.
type GetUpcomingPickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetUpcomingPickupsQueryHandler creates a handler for pickup deadline
// queries.
func NewGetUpcomingPickupsQueryHandler(db *gorm.DB) GetUpcomingPickupsQueryHandler {
	return GetUpcomingPickupsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by pickup start so the
// most urgent returns come first.
func (h GetUpcomingPickupsQueryHandler) Handle(
	ctx context.Context,
	query GetUpcomingPickupsQuery,
) ([]GetUpcomingPickupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pickups := make([]GetUpcomingPickupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			venue_name,
			venue_address,
			pickup_start,
			pickup_end,
			status
		FROM orders
		WHERE status IN ?
		  AND pickup_start IS NOT NULL
		  AND pickup_start < ?
		ORDER BY pickup_start
	`, []int{int(order.Delivered), int(order.InUse), int(order.AwaitingReturn)}, query.Deadline()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                     uuid.UUID
			resp                   GetUpcomingPickupsQueryResponse
			pickupStart, pickupEnd time.Time
			status                 int
		)

		err = rows.Scan(
			&id,
			&resp.Code,
			&resp.VenueName,
			&resp.VenueAddress,
			&pickupStart,
			&pickupEnd,
			&status,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp.PickupStart = pickupStart
		resp.PickupEnd = pickupEnd
		resp.Status = order.Status(status).String()

		pickups = append(pickups, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pickups, nil
}
