package errorlogrepo_test

import (
	"testing"
	"time"

	"harvesthub/internal/adapters/out/postgres/errorlogrepo"
	"harvesthub/internal/adapters/out/postgres/testdb"
	"harvesthub/internal/core/domain/model/errorlog"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormErrorLogRepository(t *testing.T) {
	db := testdb.OpenSQLite(t)
	repo := errorlogrepo.NewGormErrorLogRepository(db)
	actor, cropID := kernel.NewUUID(), kernel.NewUUID()

	old, err := errorlog.NewEntry(kernel.NewUUID(), "DeleteCrop", &actor, &cropID, "connection reset", "", time.Now().Add(-60*24*time.Hour))
	require.NoError(t, err)
	recent, err := errorlog.NewEntry(kernel.NewUUID(), "PlaceOrder", nil, nil, "timeout", "stack", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), old))
	require.NoError(t, repo.Add(t.Context(), recent))

	loaded, err := repo.Get(t.Context(), old.ID())
	require.NoError(t, err)
	assert.Equal(t, "DeleteCrop", loaded.Action())
	assert.Equal(t, actor, *loaded.ActorID())
	require.NotNil(t, loaded.EntityID())
	assert.Equal(t, cropID, *loaded.EntityID())

	n, err := repo.DeleteBefore(t.Context(), time.Now().Add(-30*24*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = repo.Get(t.Context(), old.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	_, err = repo.Get(t.Context(), recent.ID())
	require.NoError(t, err)
}
