package commands

import (
	"context"

	"harvesthub/internal/pkg/errs"
)

// DeleteNotificationCommandHandler removes a single notification from a farmer's
// list. Unlike marking read, deleting is strict: a missing notification is
// errs.ErrObjectNotFound and another farmer's one is errs.ErrAccessIsForbidden.
type DeleteNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewDeleteNotificationCommandHandler(uowFactory NotificationUoWFactory) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteNotificationCommandHandler) Handle(ctx context.Context, cmd DeleteNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()

	n, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !n.BelongsTo(cmd.FarmerID()) {
		return errs.NewAccessIsForbiddenError("notification", cmd.NotificationID())
	}

	if err = repo.Delete(ctx, n.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
