package ports

import (
	"context"
	"time"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for farmer notifications.
type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists the read flag.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by id. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// DeleteByOrderIDs removes every notification referencing one of orderIDs and
	// reports how many rows went away.
	DeleteByOrderIDs(ctx context.Context, orderIDs []kernel.UUID) (int64, error)

	// Delete removes a single notification. Returns errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteReadBefore removes read notifications created before the given instant.
	DeleteReadBefore(ctx context.Context, before time.Time) (int64, error)
}
