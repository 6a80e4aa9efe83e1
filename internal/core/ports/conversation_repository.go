package ports

import (
	"context"

	"harvesthub/internal/core/domain/model/conversation"
	"harvesthub/internal/core/domain/model/kernel"
)

// ConversationRepository stores chat threads.
type ConversationRepository interface {
	// Add persists a conversation with its messages.
	Add(ctx context.Context, aggregate *conversation.Conversation) error

	// DeleteByCrop removes every conversation about cropID, messages first, and
	// reports how many conversations went away.
	DeleteByCrop(ctx context.Context, cropID kernel.UUID) (int64, error)
}
