package ports

import (
	"context"

	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
)

// CropRepository defines the persistence contract for crops and their images.
type CropRepository interface {
	// Add persists a new crop together with its images.
	Add(ctx context.Context, aggregate *crop.Crop) error

	// Update persists the editable details of a crop. Images are not touched.
	Update(ctx context.Context, aggregate *crop.Crop) error

	// Get retrieves a crop with its images. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*crop.Crop, error)

	// Delete removes the crop row only. Orders, conversations and images must be gone.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteImages removes the image records of a crop.
	DeleteImages(ctx context.Context, cropID kernel.UUID) (int64, error)
}
