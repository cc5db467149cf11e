package ports

import (
	"context"

	"rentops/internal/core/domain/model/kernel"
)

// Notifier publishes domain notifications to interested outside parties
// (email, chat, webhooks). Publishing happens after the owning transaction
// commits; a failed publish never rolls back a committed state change.
type Notifier interface {
	// Publish emits the named event for the given order.
	Publish(ctx context.Context, event string, orderID kernel.UUID) error
}
