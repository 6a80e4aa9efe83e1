package commands

import (
	"context"

	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
)

// CreateCropCommandHandler lists crops. The farmer must exist.
type CreateCropCommandHandler struct {
	uowFactory CropUoWFactory
}

func NewCreateCropCommandHandler(uowFactory CropUoWFactory) CreateCropCommandHandler {
	return CreateCropCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateCropCommandHandler) Handle(ctx context.Context, cmd CreateCropCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	farmerRepo := uow.FarmerRepository()
	cropRepo := uow.CropRepository()

	farmer, err := farmerRepo.Get(ctx, cmd.FarmerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	c, err := crop.NewCrop(cmd.CropID(), farmer.ID(), cmd.Details(), cmd.ReportID(), cmd.Images())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = cropRepo.Add(ctx, c); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return c.ID(), nil
}
