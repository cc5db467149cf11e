package ports

import (
	"context"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle and financial state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// It fails with a ConcurrentModification error when the stored
	// version no longer matches the aggregate's version.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its history and line item ledger.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// Used by operational dashboards and the transition workflows.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllInvoicedUnpaid retrieves all orders that were invoiced but
	// have no payment recorded yet. Used for receivables follow-up.
	GetAllInvoicedUnpaid(ctx context.Context) ([]*order.Order, error)

	// GetAllWithPickupBefore retrieves Delivered, InUse, or AwaitingReturn
	// orders whose pickup window starts before the given deadline. Used by
	// the return reminder sweep.
	GetAllWithPickupBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error)
}
