package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rentops/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PickupDueEvent is published once per order whose pickup window opens
// within the reminder lead time.
const PickupDueEvent = "order.pickup_due"

// ReturnReminderJob periodically sweeps delivered-side orders and reminds
// operations about pickups coming due. Each order is reminded at most once
// per process lifetime.
type ReturnReminderJob struct {
	orders   ports.OrderRepository
	notifier ports.Notifier
	leadTime time.Duration
	cron     *cron.Cron
	logger   *slog.Logger

	mu       sync.Mutex
	reminded map[string]struct{}
}

// NewReturnReminderJob creates a job that sweeps every schedule tick for
// pickups opening within leadTime.
func NewReturnReminderJob(
	orders ports.OrderRepository,
	notifier ports.Notifier,
	leadTime time.Duration,
	logger *slog.Logger,
) *ReturnReminderJob {
	return &ReturnReminderJob{
		orders:   orders,
		notifier: notifier,
		leadTime: leadTime,
		cron:     cron.New(),
		logger:   logger.With("component", "return_reminder_job"),
		reminded: make(map[string]struct{}),
	}
}

// Start begins the reminder sweep, running every ten minutes.
func (j *ReturnReminderJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * *", func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Return reminder job started (running every ten minutes)")
	return nil
}

// Stop stops the reminder sweep.
func (j *ReturnReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Return reminder job stopped")
}

func (j *ReturnReminderJob) runOnce(ctx context.Context) {
	deadline := time.Now().UTC().Add(j.leadTime)

	due, err := j.orders.GetAllWithPickupBefore(ctx, deadline)
	if err != nil {
		j.logger.ErrorContext(ctx, "Return reminder sweep failed", "error", err)
		return
	}

	for _, o := range due {
		id := o.ID()
		if j.alreadyReminded(id.String()) {
			continue
		}

		if err = j.notifier.Publish(ctx, PickupDueEvent, id); err != nil {
			j.logger.ErrorContext(ctx, "Pickup reminder publish failed",
				"orderId", id.String(), "error", err)
			continue
		}

		j.markReminded(id.String())
		j.logger.InfoContext(ctx, "Pickup reminder published", "orderId", id.String())
	}
}

func (j *ReturnReminderJob) alreadyReminded(id string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	_, ok := j.reminded[id]
	return ok
}

func (j *ReturnReminderJob) markReminded(id string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.reminded[id] = struct{}{}
}
