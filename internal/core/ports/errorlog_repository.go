package ports

import (
	"context"
	"time"

	"harvesthub/internal/core/domain/model/errorlog"
)

// ErrorLogRepository stores diagnostic entries.
type ErrorLogRepository interface {
	Add(ctx context.Context, entry *errorlog.Entry) error
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}
