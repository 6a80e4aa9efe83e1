// Package notificationrepo maps farmer notifications to the notifications table.
package notificationrepo

import (
	"time"

	"harvesthub/internal/adapters/out/postgres/orderrepo"
	"harvesthub/internal/adapters/out/postgres/partyrepo"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationDTO is the notifications row. The display fields are snapshots and
// are never joined back to their sources.
type NotificationDTO struct {
	ID               uuid.UUID            `gorm:"type:uuid;primaryKey"`
	FarmerID         uuid.UUID            `gorm:"type:uuid;not null;index:idx_notifications_farmer_created,priority:1"`
	Farmer           *partyrepo.FarmerDTO `gorm:"foreignKey:FarmerID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	OrderID          *uuid.UUID           `gorm:"type:uuid;index"`
	Order            *orderrepo.OrderDTO  `gorm:"foreignKey:OrderID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	NotificationType string               `gorm:"size:30;not null"`
	BuyerName        string               `gorm:"size:200"`
	CropName         string               `gorm:"size:200"`
	Quantity         decimal.NullDecimal  `gorm:"type:numeric(18,3)"`
	TotalPrice       decimal.NullDecimal  `gorm:"type:numeric(21,5)"`
	IsRead           bool                 `gorm:"not null;default:false"`
	CreatedAt        time.Time            `gorm:"not null;index:idx_notifications_farmer_created,priority:2"`
	Message          string               `gorm:"type:text;not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	var orderID *uuid.UUID
	if id := n.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:               n.ID().Bytes(),
		FarmerID:         n.FarmerID().Bytes(),
		OrderID:          orderID,
		NotificationType: n.Type().String(),
		BuyerName:        n.BuyerName(),
		CropName:         n.CropName(),
		Quantity:         nullDecimal(n.Quantity()),
		TotalPrice:       nullDecimal(n.TotalPrice()),
		IsRead:           n.IsRead(),
		CreatedAt:        n.CreatedAt(),
		Message:          n.Message(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return notification.RestoreNotification(
		id, farmerID, orderID,
		notification.Type(dto.NotificationType),
		dto.BuyerName, dto.CropName,
		decimalPtr(dto.Quantity), decimalPtr(dto.TotalPrice),
		dto.IsRead, dto.CreatedAt, dto.Message,
	)
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
