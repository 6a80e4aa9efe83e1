package jobs

import (
	"context"
	"log/slog"
	"time"

	"harvesthub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationPurger is satisfied by *commands.PurgeReadNotificationsCommandHandler.
type NotificationPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeReadNotificationsCommand) (int64, error)
}

// NotificationRetentionJob periodically removes read notifications older than
// the retention window. Unread notifications are kept regardless of age.
type NotificationRetentionJob struct {
	purger    NotificationPurger
	schedule  string
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationRetentionJob creates the job. schedule is a six-field cron
// expression (seconds first).
func NewNotificationRetentionJob(
	purger NotificationPurger,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *NotificationRetentionJob {
	return &NotificationRetentionJob{
		purger:    purger,
		schedule:  schedule,
		retention: retention,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_retention_job"),
	}
}

// Start registers the purge under the configured schedule and starts the scheduler.
func (j *NotificationRetentionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification retention job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retention job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// RunOnce purges everything read before now minus the retention window.
func (j *NotificationRetentionJob) RunOnce(ctx context.Context) (int64, error) {
	cmd, err := commands.NewPurgeReadNotificationsCommand(j.now().Add(-j.retention))
	if err != nil {
		return 0, err
	}

	deleted, err := j.purger.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Read notifications purged", "deleted", deleted, "before", cmd.Before())
	}
	return deleted, nil
}

// Stop stops the scheduler. A purge already in progress is not interrupted.
func (j *NotificationRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification retention job stopped")
}
