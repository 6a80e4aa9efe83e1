package partyrepo

import (
	"context"
	"errors"

	"harvesthub/internal/adapters/out/postgres/dberr"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/participant"
	"harvesthub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBuyerRepository implements ports.BuyerRepository using GORM.
type GormBuyerRepository struct {
	db *gorm.DB
}

func NewGormBuyerRepository(db *gorm.DB) *GormBuyerRepository {
	return &GormBuyerRepository{db: db}
}

func (r *GormBuyerRepository) Add(ctx context.Context, buyer *participant.Buyer) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	dto := buyerFromDomain(buyer)
	return dberr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "buyer")
}

func (r *GormBuyerRepository) Get(ctx context.Context, id kernel.UUID) (*participant.Buyer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BuyerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("buyer", id.String())
		}
		return nil, err
	}

	return buyerToDomain(dto)
}

// GormFarmerRepository implements ports.FarmerRepository using GORM.
type GormFarmerRepository struct {
	db *gorm.DB
}

func NewGormFarmerRepository(db *gorm.DB) *GormFarmerRepository {
	return &GormFarmerRepository{db: db}
}

func (r *GormFarmerRepository) Add(ctx context.Context, farmer *participant.Farmer) error {
	if err := farmer.Validate(); err != nil {
		return err
	}

	dto := farmerFromDomain(farmer)
	return dberr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "farmer")
}

func (r *GormFarmerRepository) Get(ctx context.Context, id kernel.UUID) (*participant.Farmer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FarmerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("farmer", id.String())
		}
		return nil, err
	}

	return farmerToDomain(dto)
}
