package jobs

import (
	"context"
	"log/slog"
	"time"

	"harvesthub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ErrorLogPurger is satisfied by *commands.PurgeErrorLogsCommandHandler.
type ErrorLogPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeErrorLogsCommand) (int64, error)
}

// ErrorLogRetentionJob periodically removes diagnostic entries older than the
// retention window.
type ErrorLogRetentionJob struct {
	purger    ErrorLogPurger
	schedule  string
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewErrorLogRetentionJob(
	purger ErrorLogPurger,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *ErrorLogRetentionJob {
	return &ErrorLogRetentionJob{
		purger:    purger,
		schedule:  schedule,
		retention: retention,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "error_log_retention_job"),
	}
}

func (j *ErrorLogRetentionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Error log retention job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Error log retention job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

func (j *ErrorLogRetentionJob) RunOnce(ctx context.Context) (int64, error) {
	cmd, err := commands.NewPurgeErrorLogsCommand(j.now().Add(-j.retention))
	if err != nil {
		return 0, err
	}

	deleted, err := j.purger.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Error log entries purged", "deleted", deleted, "before", cmd.Before())
	}
	return deleted, nil
}

func (j *ErrorLogRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Error log retention job stopped")
}
