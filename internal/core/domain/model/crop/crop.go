package crop

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 200
	maxUnitLength        = 20
	maxDescriptionLength = 2000
)

// DefaultUnit is used when a listing does not name its unit.
const DefaultUnit = "kg"

// ErrCropIsNotConstructed is returned when a Crop was not created via NewCrop or RestoreCrop.
var ErrCropIsNotConstructed = errors.New("Crop must be created via NewCrop constructor")

// Details is the farmer-editable part of a listing.
type Details struct {
	Name         string
	Variety      Variety
	Quantity     decimal.Decimal
	Unit         string
	PricePerUnit decimal.Decimal
	Description  string
}

// Crop is a farmer's listed commodity batch and the aggregate root for its images.
//
// Invariants:
//   - name and unit are non-empty and bounded
//   - quantity and price per unit are strictly positive
//   - the owning farmer never changes after listing
//
// Orders snapshot PricePerUnit when they are placed, so UpdateDetails never
// affects totals of existing orders.
type Crop struct {
	id           kernel.UUID
	farmerID     kernel.UUID
	name         string
	variety      Variety
	quantity     decimal.Decimal
	unit         string
	pricePerUnit decimal.Decimal
	description  string
	reportID     *kernel.UUID
	images       []Image

	isConstructed bool
}

// NewCrop lists a new crop for farmerID.
//
// Example:
//
//	c, err := crop.NewCrop(kernel.NewUUID(), farmerID, crop.Details{
//	    Name:         "Basmati",
//	    Variety:      crop.Rice,
//	    Quantity:     decimal.NewFromInt(1200),
//	    Unit:         "kg",
//	    PricePerUnit: decimal.NewFromInt(310),
//	}, nil, nil)
func NewCrop(id, farmerID kernel.UUID, details Details, reportID *kernel.UUID, images []Image) (*Crop, error) {
	c := &Crop{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setFarmerID(farmerID),
		c.setReportID(reportID),
		c.setImages(images),
		c.applyDetails(details),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCrop rebuilds a crop loaded from storage, re-checking every invariant.
func RestoreCrop(id, farmerID kernel.UUID, details Details, reportID *kernel.UUID, images []Image) (*Crop, error) {
	return NewCrop(id, farmerID, details, reportID, images)
}

func (c *Crop) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCropIsNotConstructed
	}
	return nil
}

func (c *Crop) ID() kernel.UUID {
	return c.id
}

func (c *Crop) FarmerID() kernel.UUID {
	return c.farmerID
}

func (c *Crop) Name() string {
	return c.name
}

func (c *Crop) Variety() Variety {
	return c.variety
}

func (c *Crop) Quantity() decimal.Decimal {
	return c.quantity
}

func (c *Crop) Unit() string {
	return c.unit
}

func (c *Crop) PricePerUnit() decimal.Decimal {
	return c.pricePerUnit
}

func (c *Crop) Description() string {
	return c.description
}

// ReportID returns the attached lab report, or nil.
func (c *Crop) ReportID() *kernel.UUID {
	return c.reportID
}

// Images returns a copy of the crop's images in listing order.
func (c *Crop) Images() []Image {
	images := make([]Image, len(c.images))
	copy(images, c.images)
	return images
}

// IsOwnedBy reports whether farmerID listed this crop.
func (c *Crop) IsOwnedBy(farmerID kernel.UUID) bool {
	return c.farmerID.IsEqual(farmerID)
}

// UpdateDetails replaces the editable listing fields. Nothing changes when any
// field is invalid.
func (c *Crop) UpdateDetails(details Details) error {
	candidate := *c
	if err := candidate.applyDetails(details); err != nil {
		return err
	}

	*c = candidate
	return nil
}

func (c *Crop) applyDetails(d Details) error {
	if err := errors.Join(
		c.setName(d.Name),
		c.setVariety(d.Variety),
		c.setQuantity(d.Quantity),
		c.setUnit(d.Unit),
		c.setPricePerUnit(d.PricePerUnit),
		c.setDescription(d.Description),
	); err != nil {
		return err
	}
	return nil
}

func (c *Crop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Crop) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("farmer id", err)
	}
	c.farmerID = farmerID
	return nil
}

func (c *Crop) setReportID(reportID *kernel.UUID) error {
	if reportID == nil {
		c.reportID = nil
		return nil
	}
	if err := reportID.Validate(); err != nil {
		return err
	}
	id := *reportID
	c.reportID = &id
	return nil
}

func (c *Crop) setImages(images []Image) error {
	c.images = make([]Image, 0, len(images))
	for _, image := range images {
		if err := image.Validate(); err != nil {
			return err
		}
		c.images = append(c.images, image)
	}
	return nil
}

func (c *Crop) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("crop name")
	}
	if n := utf8.RuneCountInString(name); n > maxNameLength {
		return errs.NewValueIsOutOfRangeError("crop name length", n, 1, maxNameLength)
	}
	c.name = name
	return nil
}

func (c *Crop) setVariety(variety Variety) error {
	if err := variety.Validate(); err != nil {
		return err
	}
	c.variety = variety
	return nil
}

func (c *Crop) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%s is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *Crop) setUnit(unit string) error {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	if n := utf8.RuneCountInString(unit); n > maxUnitLength {
		return errs.NewValueIsOutOfRangeError("unit length", n, 1, maxUnitLength)
	}
	c.unit = unit
	return nil
}

func (c *Crop) setPricePerUnit(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price per unit is invalid", fmt.Errorf("%s is not greater than 0", price))
	}
	if !price.Equal(price.Round(2)) {
		return errs.NewValueIsInvalidErrorWithCause("price per unit is invalid", fmt.Errorf("%s has more than 2 decimal places", price))
	}
	c.pricePerUnit = price
	return nil
}

func (c *Crop) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if n := utf8.RuneCountInString(description); n > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 0, maxDescriptionLength)
	}
	c.description = description
	return nil
}
