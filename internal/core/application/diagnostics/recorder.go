// Package diagnostics records unexpected failures of core operations. Every
// record goes to the structured log and to the error log table that
// administrators browse.
package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"harvesthub/internal/core/domain/model/errorlog"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/ports"
)

const persistTimeout = 5 * time.Second

// Recorder writes failures to slog and persists them through an ErrorLogRepository.
// Record never fails: a persistence error is logged and dropped so that a broken
// error log cannot take the calling request down with it.
type Recorder struct {
	repo   ports.ErrorLogRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewRecorder(repo ports.ErrorLogRepository, logger *slog.Logger) *Recorder {
	return &Recorder{
		repo:   repo,
		logger: logger.With("component", "diagnostics"),
		now:    time.Now,
	}
}

// Record logs err for action on behalf of actorID (nil when anonymous) against
// entityID (nil when the action has no target) and stores it. The store runs on
// a context detached from ctx so that it survives a cancelled request.
func (r *Recorder) Record(ctx context.Context, action string, actorID, entityID *kernel.UUID, err error) {
	if err == nil {
		return
	}

	attrs := []any{"action", action, "error", err}
	if actorID != nil {
		attrs = append(attrs, "actor_id", actorID.String())
	}
	if entityID != nil {
		attrs = append(attrs, "entity_id", entityID.String())
	}
	r.logger.ErrorContext(ctx, "operation failed", attrs...)

	entry, entryErr := errorlog.NewEntry(kernel.NewUUID(), action, actorID, entityID, err.Error(), describe(err), r.now())
	if entryErr != nil {
		r.logger.WarnContext(ctx, "error log entry rejected", "action", action, "error", entryErr)
		return
	}

	r.persist(ctx, action, entry)
}

// persist stores entry. Errors and panics from the repository are logged, never propagated.
func (r *Recorder) persist(ctx context.Context, action string, entry *errorlog.Entry) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.WarnContext(ctx, "error log entry not stored", "action", action, "panic", fmt.Sprint(p))
		}
	}()

	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if repoErr := r.repo.Add(persistCtx, entry); repoErr != nil {
		r.logger.WarnContext(ctx, "error log entry not stored", "action", action, "error", repoErr)
	}
}

// describe lists the chain of wrapped errors with their types, outermost first.
func describe(err error) string {
	var b strings.Builder
	for depth := 0; err != nil; depth++ {
		if depth > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%T: %v", err, err)
		err = errors.Unwrap(err)
	}
	return b.String()
}
