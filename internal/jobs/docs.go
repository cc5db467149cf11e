// Package jobs provides scheduled background tasks for the order lifecycle.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which provides a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(returnReminderJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// ReturnReminderJob sweeps for orders still out in the field whose pickup
// window opens within the configured lead time and publishes one
// "order.pickup_due" notification per due order.
package jobs
