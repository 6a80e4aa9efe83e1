// Package conversationrepo persists chat threads and their messages.
package conversationrepo

import (
	"time"

	"harvesthub/internal/adapters/out/postgres/croprepo"
	"harvesthub/internal/adapters/out/postgres/partyrepo"
	"harvesthub/internal/core/domain/model/conversation"

	"github.com/google/uuid"
)

type ConversationDTO struct {
	ID            uuid.UUID            `gorm:"type:uuid;primaryKey"`
	BuyerID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	Buyer         *partyrepo.BuyerDTO  `gorm:"foreignKey:BuyerID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	FarmerID      uuid.UUID            `gorm:"type:uuid;not null;index"`
	Farmer        *partyrepo.FarmerDTO `gorm:"foreignKey:FarmerID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	CropID        *uuid.UUID           `gorm:"type:uuid;index"`
	Crop          *croprepo.CropDTO    `gorm:"foreignKey:CropID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	CreatedAt     time.Time            `gorm:"not null"`
	LastMessageAt time.Time            `gorm:"not null"`
}

func (ConversationDTO) TableName() string {
	return "conversations"
}

type MessageDTO struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ConversationID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Conversation   *ConversationDTO `gorm:"foreignKey:ConversationID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	SenderID       uuid.UUID        `gorm:"type:uuid;not null"`
	SenderName     string           `gorm:"size:200"`
	Text           string           `gorm:"type:text;not null"`
	SentAt         time.Time        `gorm:"not null"`
	IsRead         bool             `gorm:"not null;default:false"`
}

func (MessageDTO) TableName() string {
	return "chat_messages"
}

func fromDomain(c *conversation.Conversation) (ConversationDTO, []MessageDTO) {
	var cropID *uuid.UUID
	if id := c.CropID(); id != nil {
		raw := id.Bytes()
		cropID = &raw
	}

	dto := ConversationDTO{
		ID:            c.ID().Bytes(),
		BuyerID:       c.BuyerID().Bytes(),
		FarmerID:      c.FarmerID().Bytes(),
		CropID:        cropID,
		CreatedAt:     c.CreatedAt(),
		LastMessageAt: c.LastMessageAt(),
	}

	messages := make([]MessageDTO, 0, len(c.Messages()))
	for _, m := range c.Messages() {
		messages = append(messages, MessageDTO{
			ID:             m.ID().Bytes(),
			ConversationID: dto.ID,
			SenderID:       m.SenderID().Bytes(),
			SenderName:     m.SenderName(),
			Text:           m.Text(),
			SentAt:         m.SentAt(),
			IsRead:         m.IsRead(),
		})
	}

	return dto, messages
}
