package notificationrepo

import (
	"context"
	"errors"
	"time"

	"harvesthub/internal/adapters/out/postgres/dberr"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/notification"
	"harvesthub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dberr.Translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error, "notification")
}

// Update persists the read flag, the only mutable part of a notification.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("is_read", aggregate.IsRead())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("notification", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	return nil
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormNotificationRepository) DeleteByOrderIDs(ctx context.Context, orderIDs []kernel.UUID) (int64, error) {
	if len(orderIDs) == 0 {
		return 0, nil
	}

	raw := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return 0, err
		}
		raw = append(raw, id.Bytes())
	}

	result := r.db.WithContext(ctx).Where("order_id IN ?", raw).Delete(&NotificationDTO{})
	return result.RowsAffected, dberr.Translate(result.Error, "notification")
}

func (r *GormNotificationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&NotificationDTO{})
	if result.Error != nil {
		return dberr.Translate(result.Error, "notification")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	return nil
}

// DeleteReadBefore removes read notifications created before the given instant.
func (r *GormNotificationRepository) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	if before.IsZero() {
		return 0, errs.NewValueIsRequiredError("before")
	}

	result := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, before.UTC()).
		Delete(&NotificationDTO{})
	return result.RowsAffected, result.Error
}
