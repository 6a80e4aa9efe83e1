package commands

import (
	"context"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
)

// UpdateCropCommandHandler edits a crop for its farmer or an administrator.
// Price changes only affect orders placed afterwards; existing order totals are
// snapshots and stay as they are.
type UpdateCropCommandHandler struct {
	uowFactory CropUoWFactory
}

func NewUpdateCropCommandHandler(uowFactory CropUoWFactory) UpdateCropCommandHandler {
	return UpdateCropCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateCropCommandHandler) Handle(ctx context.Context, cmd UpdateCropCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Is(kernel.Farmer) && !actor.Is(kernel.Admin) {
		return errs.NewAccessIsForbiddenError("crop", cmd.CropID())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cropRepo := uow.CropRepository()

	c, err := cropRepo.Get(ctx, cmd.CropID())
	if err != nil {
		return err
	}

	if actor.Is(kernel.Farmer) && !c.IsOwnedBy(actor.ID()) {
		return errs.NewAccessIsForbiddenError("crop", cmd.CropID())
	}

	if err = c.UpdateDetails(cmd.Details()); err != nil {
		return err
	}

	if err = cropRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
