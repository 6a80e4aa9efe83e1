package commands

import (
	"errors"
	"fmt"

	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrCreateCropCommandIsNotConstructed = errors.New(
	"CreateCropCommand must be created via NewCreateCropCommand constructor",
)

// CreateCropCommand lists a new crop for a farmer. Detail rules (name, unit,
// positive quantity and price) are enforced by the crop aggregate in the handler;
// the constructor checks identifiers and image URLs.
//
// Example:
//
//	cmd, err := NewCreateCropCommand(farmerID, crop.Details{
//	    Name:         "Basmati",
//	    Variety:      crop.Rice,
//	    Quantity:     decimal.NewFromInt(1200),
//	    Unit:         "kg",
//	    PricePerUnit: decimal.NewFromInt(310),
//	}, []string{"/uploads/basmati.jpg"}, nil)
type CreateCropCommand struct { //nolint:recvcheck //using for validation
	cropID   kernel.UUID
	farmerID kernel.UUID
	details  crop.Details
	images   []crop.Image
	reportID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateCropCommand(
	farmerID kernel.UUID,
	details crop.Details,
	imageURLs []string,
	reportID *kernel.UUID,
) (CreateCropCommand, error) {
	images := make([]crop.Image, 0, len(imageURLs))
	imageErrs := make([]error, 0, len(imageURLs))
	for i, url := range imageURLs {
		image, err := crop.NewImage(kernel.NewUUID(), url)
		if err != nil {
			imageErrs = append(imageErrs, fmt.Errorf("image %d: %w", i, err))
			continue
		}
		images = append(images, image)
	}

	if err := errors.Join(
		requireID("farmer id", farmerID),
		optionalID("report id", reportID),
		errors.Join(imageErrs...),
	); err != nil {
		return CreateCropCommand{}, err
	}

	return CreateCropCommand{
		cropID:   kernel.NewUUID(),
		farmerID: farmerID,
		details:  details,
		images:   images,
		reportID: copyID(reportID),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCropCommand) Validate() error {
	return c.guard.Validate(ErrCreateCropCommandIsNotConstructed)
}

// CropID returns the identifier the new crop will be stored under.
func (c CreateCropCommand) CropID() kernel.UUID {
	return c.cropID
}

func (c CreateCropCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

func (c CreateCropCommand) Details() crop.Details {
	return c.details
}

func (c CreateCropCommand) Images() []crop.Image {
	images := make([]crop.Image, len(c.images))
	copy(images, c.images)
	return images
}

func (c CreateCropCommand) ReportID() *kernel.UUID {
	return copyID(c.reportID)
}
