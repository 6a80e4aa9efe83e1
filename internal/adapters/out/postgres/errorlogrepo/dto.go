// Package errorlogrepo persists diagnostic entries to the error_logs table.
package errorlogrepo

import (
	"time"

	"harvesthub/internal/core/domain/model/errorlog"
	"harvesthub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ErrorLogDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Action    string     `gorm:"size:100;not null"`
	ActorID   *uuid.UUID `gorm:"type:uuid"`
	EntityID  *uuid.UUID `gorm:"type:uuid;index"`
	Message   string     `gorm:"size:1000;not null"`
	Detail    string     `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

func (ErrorLogDTO) TableName() string {
	return "error_logs"
}

func fromDomain(e *errorlog.Entry) ErrorLogDTO {
	return ErrorLogDTO{
		ID:        e.ID().Bytes(),
		Action:    e.Action(),
		ActorID:   rawID(e.ActorID()),
		EntityID:  rawID(e.EntityID()),
		Message:   e.Message(),
		Detail:    e.Detail(),
		CreatedAt: e.CreatedAt(),
	}
}

func toDomain(dto ErrorLogDTO) (*errorlog.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernelID(dto.ActorID)
	if err != nil {
		return nil, err
	}
	entityID, err := kernelID(dto.EntityID)
	if err != nil {
		return nil, err
	}

	return errorlog.RestoreEntry(id, dto.Action, actorID, entityID, dto.Message, dto.Detail, dto.CreatedAt)
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent reference
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
