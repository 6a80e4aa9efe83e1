package commands

import (
	"context"
)

// MarkNotificationReadCommandHandler flags a notification as read. Marking an
// already read, missing or foreign notification succeeds without changes.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
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

	id := cmd.NotificationID()
	if err := markNotificationRead(ctx, uow.NotificationRepository(), cmd.FarmerID(), &id); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
