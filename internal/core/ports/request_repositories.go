package ports

import (
	"context"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/core/domain/model/reskin"
)

// LineItemRequestRepository defines the persistence contract for customer
// line item requests awaiting admin review.
type LineItemRequestRepository interface {
	// Add persists a new line item request.
	Add(ctx context.Context, aggregate *lineitem.Request) error

	// Update persists the resolution of an existing request.
	Update(ctx context.Context, aggregate *lineitem.Request) error

	// Get retrieves a line item request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*lineitem.Request, error)

	// GetAllRequested retrieves all requests still awaiting review for
	// the given order.
	GetAllRequested(ctx context.Context, orderID kernel.UUID) ([]*lineitem.Request, error)
}

// ReskinRequestRepository defines the persistence contract for asset
// reskin requests.
type ReskinRequestRepository interface {
	// Add persists a new reskin request.
	Add(ctx context.Context, aggregate *reskin.Request) error

	// Update persists the resolution of an existing request.
	Update(ctx context.Context, aggregate *reskin.Request) error

	// Get retrieves a reskin request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*reskin.Request, error)

	// GetAllPending retrieves all unresolved requests for the given order.
	GetAllPending(ctx context.Context, orderID kernel.UUID) ([]*reskin.Request, error)
}
