package queries

import (
	"errors"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/pkg/errs"
	"rentops/internal/pkg/guard"
)

var ErrGetUpcomingPickupsQueryIsNotConstructed = errors.New(
	"GetUpcomingPickupsQuery must be created via NewGetUpcomingPickupsQuery constructor",
)

// GetUpcomingPickupsQuery retrieves delivered-side orders whose pickup
// window opens before the given deadline, feeding the return reminder
// sweep and the dispatch planning board.
type GetUpcomingPickupsQuery struct {
	deadline time.Time

	guard guard.ConstructorGuard
}

// NewGetUpcomingPickupsQuery creates a query for pickups due before deadline.
func NewGetUpcomingPickupsQuery(deadline time.Time) (GetUpcomingPickupsQuery, error) {
	if deadline.IsZero() {
		return GetUpcomingPickupsQuery{}, errs.NewValueIsRequiredError("deadline")
	}

	return GetUpcomingPickupsQuery{
		deadline: deadline,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUpcomingPickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetUpcomingPickupsQueryIsNotConstructed)
}

// Deadline returns the pickup window cutoff.
func (q GetUpcomingPickupsQuery) Deadline() time.Time {
	return q.deadline
}

// GetUpcomingPickupsQueryResponse is one pickup due before the deadline.
type GetUpcomingPickupsQueryResponse struct {
	ID           kernel.UUID
	Code         string
	VenueName    string
	VenueAddress string
	PickupStart  time.Time
	PickupEnd    time.Time
	Status       string
}
