package jobs

import "fmt"

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	returnReminderJob *ReturnReminderJob
}

// NewJobManager creates a job manager over the application's jobs.
func NewJobManager(returnReminderJob *ReturnReminderJob) *JobManager {
	return &JobManager{
		returnReminderJob: returnReminderJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.returnReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start return reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.returnReminderJob.Stop()
}
