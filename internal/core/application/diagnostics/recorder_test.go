package diagnostics_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"harvesthub/internal/adapters/out/postgres/errorlogrepo"
	"harvesthub/internal/adapters/out/postgres/testdb"
	"harvesthub/internal/core/application/diagnostics"
	"harvesthub/internal/core/domain/model/errorlog"
	"harvesthub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockErrorLogRepository struct{ mock.Mock }

func (m *MockErrorLogRepository) Add(ctx context.Context, e *errorlog.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockErrorLogRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return int64(args.Int(0)), args.Error(1)
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRecorder_Record(t *testing.T) {
	t.Run("should log and persist the failure", func(t *testing.T) {
		db := testdb.OpenSQLite(t)
		repo := errorlogrepo.NewGormErrorLogRepository(db)
		var buf bytes.Buffer
		actorID, cropID := kernel.NewUUID(), kernel.NewUUID()
		cause := fmt.Errorf("place order: %w", errors.New("connection reset"))

		diagnostics.NewRecorder(repo, newLogger(&buf)).Record(t.Context(), "PlaceOrder", &actorID, &cropID, cause)

		assert.Contains(t, buf.String(), `"action":"PlaceOrder"`)
		assert.Contains(t, buf.String(), actorID.String())
		assert.Contains(t, buf.String(), `"entity_id":"`+cropID.String()+`"`)
		assert.Equal(t, int64(1), testdb.Count(t, db, &errorlogrepo.ErrorLogDTO{}, "action = ?", "PlaceOrder"))

		var dto errorlogrepo.ErrorLogDTO
		require.NoError(t, db.First(&dto).Error)
		assert.Equal(t, "place order: connection reset", dto.Message)
		assert.Contains(t, dto.Detail, "*errors.errorString: connection reset")
		require.NotNil(t, dto.ActorID)
		assert.Equal(t, actorID.Bytes(), *dto.ActorID)
		require.NotNil(t, dto.EntityID)
		assert.Equal(t, cropID.Bytes(), *dto.EntityID)
	})

	t.Run("should persist even when the request context is cancelled", func(t *testing.T) {
		repo := new(MockErrorLogRepository)
		repo.On("Add", mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		}), mock.AnythingOfType("*errorlog.Entry")).Return(nil).Once()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		diagnostics.NewRecorder(repo, newLogger(new(bytes.Buffer))).Record(ctx, "DeleteCrop", nil, nil, errors.New("boom"))
		repo.AssertExpectations(t)
	})

	t.Run("should swallow persistence failures", func(t *testing.T) {
		repo := new(MockErrorLogRepository)
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("table is gone")).Once()
		var buf bytes.Buffer

		assert.NotPanics(t, func() {
			diagnostics.NewRecorder(repo, newLogger(&buf)).Record(t.Context(), "CancelOrder", nil, nil, errors.New("boom"))
		})
		assert.Contains(t, buf.String(), "error log entry not stored")
		repo.AssertExpectations(t)
	})

	t.Run("should contain a panicking repository", func(t *testing.T) {
		repo := new(MockErrorLogRepository)
		repo.On("Add", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			panic("driver bug")
		}).Once()
		var buf bytes.Buffer
		orderID := kernel.NewUUID()

		assert.NotPanics(t, func() {
			diagnostics.NewRecorder(repo, newLogger(&buf)).Record(t.Context(), "DeleteOrder", nil, &orderID, errors.New("boom"))
		})
		assert.Contains(t, buf.String(), "error log entry not stored")
		assert.Contains(t, buf.String(), "driver bug")
	})

	t.Run("should ignore nil errors", func(t *testing.T) {
		repo := new(MockErrorLogRepository)
		diagnostics.NewRecorder(repo, newLogger(new(bytes.Buffer))).Record(t.Context(), "PlaceOrder", nil, nil, nil)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}
