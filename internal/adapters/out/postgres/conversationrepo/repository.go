package conversationrepo

import (
	"context"

	"harvesthub/internal/adapters/out/postgres/dberr"
	"harvesthub/internal/core/domain/model/conversation"
	"harvesthub/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormConversationRepository implements ports.ConversationRepository using GORM.
type GormConversationRepository struct {
	db *gorm.DB
}

func NewGormConversationRepository(db *gorm.DB) *GormConversationRepository {
	return &GormConversationRepository{db: db}
}

func (r *GormConversationRepository) Add(ctx context.Context, aggregate *conversation.Conversation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, messages := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "conversation")
	}
	if len(messages) == 0 {
		return nil
	}

	return dberr.Translate(db.Omit(clause.Associations).Create(&messages).Error, "chat message")
}

// DeleteByCrop removes the crop's conversations after their messages.
func (r *GormConversationRepository) DeleteByCrop(ctx context.Context, cropID kernel.UUID) (int64, error) {
	if err := cropID.Validate(); err != nil {
		return 0, err
	}

	db := r.db.WithContext(ctx)
	conversations := db.Model(&ConversationDTO{}).Select("id").Where("crop_id = ?", cropID.Bytes())

	if err := db.Where("conversation_id IN (?)", conversations).Delete(&MessageDTO{}).Error; err != nil {
		return 0, dberr.Translate(err, "chat message")
	}

	result := db.Where("crop_id = ?", cropID.Bytes()).Delete(&ConversationDTO{})
	return result.RowsAffected, dberr.Translate(result.Error, "conversation")
}
