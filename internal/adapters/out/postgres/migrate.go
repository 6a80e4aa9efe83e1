package postgres

import (
	"context"

	"harvesthub/internal/adapters/out/postgres/conversationrepo"
	"harvesthub/internal/adapters/out/postgres/croprepo"
	"harvesthub/internal/adapters/out/postgres/errorlogrepo"
	"harvesthub/internal/adapters/out/postgres/notificationrepo"
	"harvesthub/internal/adapters/out/postgres/orderrepo"
	"harvesthub/internal/adapters/out/postgres/partyrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table in dependency order, parents first.
func Models() []any {
	return []any{
		&partyrepo.BuyerDTO{},
		&partyrepo.FarmerDTO{},
		&croprepo.CropDTO{},
		&croprepo.ImageDTO{},
		&orderrepo.OrderDTO{},
		&notificationrepo.NotificationDTO{},
		&conversationrepo.ConversationDTO{},
		&conversationrepo.MessageDTO{},
		&errorlogrepo.ErrorLogDTO{},
	}
}

// Migrate creates or updates the schema, including the restricting foreign keys
// between child and parent tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
