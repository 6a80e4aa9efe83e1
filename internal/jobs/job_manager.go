package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Settings holds schedules and retention windows for the housekeeping jobs.
type Settings struct {
	NotificationSchedule  string
	NotificationRetention time.Duration
	ErrorLogSchedule      string
	ErrorLogRetention     time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	notificationRetentionJob *NotificationRetentionJob
	errorLogRetentionJob     *ErrorLogRetentionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	notificationPurger NotificationPurger,
	errorLogPurger ErrorLogPurger,
	settings Settings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationRetentionJob: NewNotificationRetentionJob(
			notificationPurger, settings.NotificationSchedule, settings.NotificationRetention, logger),
		errorLogRetentionJob: NewErrorLogRetentionJob(
			errorLogPurger, settings.ErrorLogSchedule, settings.ErrorLogRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRetentionJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification retention job: %w", err)
	}

	if err := jm.errorLogRetentionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.notificationRetentionJob.Stop()
		return fmt.Errorf("failed to start error log retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.errorLogRetentionJob.Stop()
	jm.notificationRetentionJob.Stop()
}
