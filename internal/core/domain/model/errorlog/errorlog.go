package errorlog

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
)

const (
	maxActionLength  = 100
	maxMessageLength = 1000
	maxDetailLength  = 8000
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is a persisted record of an unexpected failure, kept for the admin back office.
type Entry struct {
	id        kernel.UUID
	action    string
	actorID   *kernel.UUID
	entityID  *kernel.UUID
	message   string
	detail    string
	createdAt time.Time

	isConstructed bool
}

// NewEntry records a failure of action performed by actorID on the entity
// entityID. Both references are optional. Over-long message and detail are truncated.
func NewEntry(
	id kernel.UUID,
	action string,
	actorID, entityID *kernel.UUID,
	message, detail string,
	now time.Time,
) (*Entry, error) {
	action = strings.TrimSpace(action)

	var actionErr, timeErr error
	if action == "" {
		actionErr = errs.NewValueIsRequiredError("action")
	}
	if now.IsZero() {
		timeErr = errs.NewValueIsRequiredError("created at")
	}
	if err := errors.Join(id.Validate(), actionErr, timeErr); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		action:        truncate(action, maxActionLength),
		actorID:       optionalID(actorID),
		entityID:      optionalID(entityID),
		message:       truncate(message, maxMessageLength),
		detail:        truncate(detail, maxDetailLength),
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEntry rebuilds an entry loaded from storage.
func RestoreEntry(
	id kernel.UUID,
	action string,
	actorID, entityID *kernel.UUID,
	message, detail string,
	createdAt time.Time,
) (*Entry, error) {
	return NewEntry(id, action, actorID, entityID, message, detail, createdAt)
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) Action() string {
	return e.action
}

func (e *Entry) ActorID() *kernel.UUID {
	return optionalID(e.actorID)
}

// EntityID returns the order, crop or notification the failed action targeted.
func (e *Entry) EntityID() *kernel.UUID {
	return optionalID(e.entityID)
}

func (e *Entry) Message() string {
	return e.message
}

func (e *Entry) Detail() string {
	return e.detail
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// optionalID copies id, dropping references that are not valid identifiers.
func optionalID(id *kernel.UUID) *kernel.UUID {
	if id == nil || id.Validate() != nil {
		return nil
	}
	v := *id
	return &v
}
