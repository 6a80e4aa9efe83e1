package croprepo

import (
	"context"
	"errors"

	"harvesthub/internal/adapters/out/postgres/dberr"
	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCropRepository implements ports.CropRepository using GORM.
type GormCropRepository struct {
	db *gorm.DB
}

// NewGormCropRepository creates a new GORM crop repository.
func NewGormCropRepository(db *gorm.DB) *GormCropRepository {
	return &GormCropRepository{db: db}
}

// Add saves a new crop and its images.
func (r *GormCropRepository) Add(ctx context.Context, aggregate *crop.Crop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, images := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "crop")
	}
	if len(images) == 0 {
		return nil
	}

	return dberr.Translate(db.Omit(clause.Associations).Create(&images).Error, "crop image")
}

// Update saves the editable details of an existing crop.
func (r *GormCropRepository) Update(ctx context.Context, aggregate *crop.Crop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CropDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":           dto.Name,
		"variety":        dto.Variety,
		"quantity":       dto.Quantity,
		"unit":           dto.Unit,
		"price_per_unit": dto.PricePerUnit,
		"description":    dto.Description,
		"report_id":      dto.ReportID,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("crop", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	return nil
}

// Get retrieves a crop by ID with its images in listing order.
func (r *GormCropRepository) Get(ctx context.Context, id kernel.UUID) (*crop.Crop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto CropDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("crop", id.String())
		}
		return nil, err
	}

	var images []ImageDTO
	if err := db.Where("crop_id = ?", dto.ID).Order("position").Find(&images).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, images)
}

// Delete removes the crop row.
func (r *GormCropRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&CropDTO{})
	if result.Error != nil {
		return dberr.Translate(result.Error, "crop")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("crop", id.String())
	}

	return nil
}

// DeleteImages removes every image record of the crop.
func (r *GormCropRepository) DeleteImages(ctx context.Context, cropID kernel.UUID) (int64, error) {
	if err := cropID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Where("crop_id = ?", cropID.Bytes()).Delete(&ImageDTO{})
	return result.RowsAffected, dberr.Translate(result.Error, "crop image")
}
