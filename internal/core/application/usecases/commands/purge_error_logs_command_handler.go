package commands

import (
	"context"
)

type PurgeErrorLogsCommandHandler struct {
	uowFactory ErrorLogUoWFactory
}

func NewPurgeErrorLogsCommandHandler(uowFactory ErrorLogUoWFactory) PurgeErrorLogsCommandHandler {
	return PurgeErrorLogsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the expired entries and reports how many went away.
func (h *PurgeErrorLogsCommandHandler) Handle(ctx context.Context, cmd PurgeErrorLogsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.ErrorLogRepository().DeleteBefore(ctx, cmd.Before())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
