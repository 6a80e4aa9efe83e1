// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"harvesthub/internal/adapters/out/postgres/croprepo"
	"harvesthub/internal/adapters/out/postgres/partyrepo"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the orders table. Buyer and Crop are declared only so that
// the schema carries restricting foreign keys; they are never loaded.
type OrderDTO struct {
	ID         uuid.UUID           `gorm:"type:uuid;primaryKey"`
	BuyerID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	Buyer      *partyrepo.BuyerDTO `gorm:"foreignKey:BuyerID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	CropID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	Crop       *croprepo.CropDTO   `gorm:"foreignKey:CropID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Quantity   decimal.Decimal     `gorm:"type:numeric(18,3);not null"`
	TotalPrice decimal.Decimal     `gorm:"type:numeric(21,5);not null"`
	OrderDate  time.Time           `gorm:"not null;index"`
	Status     string              `gorm:"size:20;not null;index"`
	Version    int                 `gorm:"not null;default:0"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID().Bytes(),
		BuyerID:    o.BuyerID().Bytes(),
		CropID:     o.CropID().Bytes(),
		Quantity:   o.Quantity(),
		TotalPrice: o.TotalPrice(),
		OrderDate:  o.OrderDate(),
		Status:     o.Status().String(),
		Version:    o.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	cropID, err := kernel.UUIDFromBytes(dto.CropID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, buyerID, cropID, dto.Quantity, dto.TotalPrice, dto.OrderDate, status, dto.Version)
}
