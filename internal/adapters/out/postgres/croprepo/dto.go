// Package croprepo maps crop aggregates and their images to the crops and
// crop_images tables.
package croprepo

import (
	"harvesthub/internal/adapters/out/postgres/partyrepo"
	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CropDTO is the crops row. Farmer is declared only to get the foreign key.
type CropDTO struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey"`
	FarmerID     uuid.UUID            `gorm:"type:uuid;not null;index"`
	Farmer       *partyrepo.FarmerDTO `gorm:"foreignKey:FarmerID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Name         string               `gorm:"size:200;not null"`
	Variety      string               `gorm:"size:20;not null"`
	Quantity     decimal.Decimal      `gorm:"type:numeric(18,3);not null"`
	Unit         string               `gorm:"size:20;not null"`
	PricePerUnit decimal.Decimal      `gorm:"type:numeric(18,2);not null"`
	Description  string               `gorm:"size:2000"`
	ReportID     *uuid.UUID           `gorm:"type:uuid"`
}

func (CropDTO) TableName() string {
	return "crops"
}

// ImageDTO is a crop_images row. Position keeps the listing order of the images.
type ImageDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CropID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Crop     *CropDTO  `gorm:"foreignKey:CropID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	URL      string    `gorm:"size:500;not null"`
	Position int       `gorm:"not null"`
}

func (ImageDTO) TableName() string {
	return "crop_images"
}

func fromDomain(c *crop.Crop) (CropDTO, []ImageDTO) {
	var reportID *uuid.UUID
	if id := c.ReportID(); id != nil {
		raw := id.Bytes()
		reportID = &raw
	}

	dto := CropDTO{
		ID:           c.ID().Bytes(),
		FarmerID:     c.FarmerID().Bytes(),
		Name:         c.Name(),
		Variety:      c.Variety().String(),
		Quantity:     c.Quantity(),
		Unit:         c.Unit(),
		PricePerUnit: c.PricePerUnit(),
		Description:  c.Description(),
		ReportID:     reportID,
	}

	images := make([]ImageDTO, 0, len(c.Images()))
	for i, img := range c.Images() {
		images = append(images, ImageDTO{
			ID:       img.ID().Bytes(),
			CropID:   dto.ID,
			URL:      img.URL(),
			Position: i,
		})
	}

	return dto, images
}

func toDomain(dto CropDTO, imageDTOs []ImageDTO) (*crop.Crop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	var reportID *kernel.UUID
	if dto.ReportID != nil {
		rID, reportErr := kernel.UUIDFromBytes((*dto.ReportID)[:])
		if reportErr != nil {
			return nil, reportErr
		}
		reportID = &rID
	}

	variety, err := crop.ParseVariety(dto.Variety)
	if err != nil {
		return nil, err
	}

	images := make([]crop.Image, 0, len(imageDTOs))
	for _, imageDTO := range imageDTOs {
		imageID, imageErr := kernel.UUIDFromBytes(imageDTO.ID[:])
		if imageErr != nil {
			return nil, imageErr
		}
		img, imageErr := crop.NewImage(imageID, imageDTO.URL)
		if imageErr != nil {
			return nil, imageErr
		}
		images = append(images, img)
	}

	return crop.RestoreCrop(id, farmerID, crop.Details{
		Name:         dto.Name,
		Variety:      variety,
		Quantity:     dto.Quantity,
		Unit:         dto.Unit,
		PricePerUnit: dto.PricePerUnit,
		Description:  dto.Description,
	}, reportID, images)
}
