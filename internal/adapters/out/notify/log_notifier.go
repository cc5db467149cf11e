// Package notify provides the notification publisher. The production
// system hands lifecycle events to a message broker; this adapter logs
// them, which is enough for the API to honor its fire-and-forget contract.
package notify

import (
	"context"
	"log/slog"

	"rentops/internal/core/domain/model/kernel"
)

// LogNotifier publishes lifecycle events to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that writes events to the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

// Publish emits one event for the order.
func (n *LogNotifier) Publish(ctx context.Context, event string, orderID kernel.UUID) error {
	n.logger.InfoContext(ctx, "Event published", "event", event, "orderId", orderID.String())
	return nil
}
