// Package partyrepo persists the buyer and farmer identities the order core reads.
package partyrepo

import (
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/participant"

	"github.com/google/uuid"
)

type BuyerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"size:200;not null"`
}

func (BuyerDTO) TableName() string {
	return "buyers"
}

type FarmerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"size:200;not null"`
}

func (FarmerDTO) TableName() string {
	return "farmers"
}

func buyerFromDomain(b *participant.Buyer) BuyerDTO {
	return BuyerDTO{ID: b.ID().Bytes(), FullName: b.FullName()}
}

func buyerToDomain(dto BuyerDTO) (*participant.Buyer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return participant.NewBuyer(id, dto.FullName)
}

func farmerFromDomain(f *participant.Farmer) FarmerDTO {
	return FarmerDTO{ID: f.ID().Bytes(), FullName: f.FullName()}
}

func farmerToDomain(dto FarmerDTO) (*participant.Farmer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return participant.NewFarmer(id, dto.FullName)
}
