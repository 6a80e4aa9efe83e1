// Package jobs provides scheduled housekeeping tasks for the marketplace core.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and delegate the actual work to command handlers, so every purge runs
// in its own unit of work.
//
// # Available Jobs
//
// 1. NotificationRetentionJob - removes read notifications older than its retention window
// 2. ErrorLogRetentionJob - removes diagnostic entries older than its retention window
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeNotificationsHandler, purgeErrorLogsHandler, settings, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Failed job starts stop
// any already running jobs.
package jobs
