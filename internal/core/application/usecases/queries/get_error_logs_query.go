package queries

import (
	"context"
	"errors"
	"time"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetErrorLogsQueryIsNotConstructed = errors.New(
	"GetErrorLogsQuery must be created via NewGetErrorLogsQuery constructor",
)

// GetErrorLogsQuery lists recorded failures for the admin back office, newest first.
type GetErrorLogsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewGetErrorLogsQuery(limit int) (GetErrorLogsQuery, error) {
	limit, err := normalizeLimit(limit)
	if err != nil {
		return GetErrorLogsQuery{}, err
	}
	return GetErrorLogsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetErrorLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetErrorLogsQueryIsNotConstructed)
}

func (q GetErrorLogsQuery) Limit() int {
	return q.limit
}

type GetErrorLogsQueryResponse struct {
	ID        kernel.UUID
	Action    string
	ActorID   *kernel.UUID
	EntityID  *kernel.UUID
	Message   string
	Detail    string
	CreatedAt time.Time
}

type GetErrorLogsQueryHandler struct {
	db *gorm.DB
}

func NewGetErrorLogsQueryHandler(db *gorm.DB) GetErrorLogsQueryHandler {
	return GetErrorLogsQueryHandler{db: db}
}

func (h GetErrorLogsQueryHandler) Handle(ctx context.Context, query GetErrorLogsQuery) ([]GetErrorLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			action,
			actor_id,
			entity_id,
			message,
			detail,
			created_at
		FROM error_logs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]GetErrorLogsQueryResponse, 0)
	for rows.Next() {
		var resp GetErrorLogsQueryResponse
		var id uuid.UUID
		var actorID, entityID uuid.NullUUID

		if err = rows.Scan(&id, &resp.Action, &actorID, &entityID, &resp.Message, &resp.Detail, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ActorID, err = nullableID(actorID); err != nil {
			return nil, err
		}
		if resp.EntityID, err = nullableID(entityID); err != nil {
			return nil, err
		}

		logs = append(logs, resp)
	}

	return logs, rows.Err()
}

func nullableID(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil //nolint:nilnil // NULL column
	}
	id, err := kernel.UUIDFromBytes(raw.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
