package conversationrepo_test

import (
	"testing"
	"time"

	"harvesthub/internal/adapters/out/postgres/conversationrepo"
	"harvesthub/internal/adapters/out/postgres/testdb"
	"harvesthub/internal/core/domain/model/conversation"
	"harvesthub/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConversationRepository_DeleteByCrop(t *testing.T) {
	db := testdb.OpenSQLite(t)
	farmer := testdb.SeedFarmer(t, db, "Bashir")
	buyer := testdb.SeedBuyer(t, db, "Ali")
	wheat := testdb.SeedCrop(t, db, farmer.ID(), "Wheat", decimal.NewFromInt(100))
	rice := testdb.SeedCrop(t, db, farmer.ID(), "Rice", decimal.NewFromInt(90))
	repo := conversationrepo.NewGormConversationRepository(db)
	now := time.Now()

	add := func(cropID kernel.UUID) *conversation.Conversation {
		c, err := conversation.NewConversation(kernel.NewUUID(), buyer.ID(), farmer.ID(), &cropID, now)
		require.NoError(t, err)
		for i, text := range []string{"Salam", "Price?"} {
			m, err := conversation.NewMessage(kernel.NewUUID(), buyer.ID(), "Ali", text, now.Add(time.Duration(i)*time.Second))
			require.NoError(t, err)
			require.NoError(t, c.Post(m))
		}
		require.NoError(t, repo.Add(t.Context(), c))
		return c
	}
	add(wheat.ID())
	kept := add(rice.ID())

	n, err := repo.DeleteByCrop(t.Context(), wheat.ID())

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Zero(t, testdb.Count(t, db, &conversationrepo.ConversationDTO{}, "crop_id = ?", wheat.ID().Bytes()))
	assert.Equal(t, int64(2), testdb.Count(t, db, &conversationrepo.MessageDTO{}, "conversation_id = ?", kept.ID().Bytes()))
	assert.Equal(t, int64(2), testdb.Count(t, db, &conversationrepo.MessageDTO{}, "1 = 1"))
}
