package errorlogrepo

import (
	"context"
	"errors"
	"time"

	"harvesthub/internal/core/domain/model/errorlog"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormErrorLogRepository implements ports.ErrorLogRepository using GORM.
type GormErrorLogRepository struct {
	db *gorm.DB
}

func NewGormErrorLogRepository(db *gorm.DB) *GormErrorLogRepository {
	return &GormErrorLogRepository{db: db}
}

func (r *GormErrorLogRepository) Add(ctx context.Context, entry *errorlog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a single entry. Returns errs.ErrObjectNotFound when absent.
func (r *GormErrorLogRepository) Get(ctx context.Context, id kernel.UUID) (*errorlog.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ErrorLogDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("error log", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormErrorLogRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	if before.IsZero() {
		return 0, errs.NewValueIsRequiredError("before")
	}

	result := r.db.WithContext(ctx).Where("created_at < ?", before.UTC()).Delete(&ErrorLogDTO{})
	return result.RowsAffected, result.Error
}
