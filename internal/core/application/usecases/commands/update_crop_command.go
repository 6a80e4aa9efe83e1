package commands

import (
	"errors"

	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrUpdateCropCommandIsNotConstructed = errors.New(
	"UpdateCropCommand must be created via NewUpdateCropCommand constructor",
)

// UpdateCropCommand replaces the editable details of a crop. Images and the
// owning farmer are not editable.
type UpdateCropCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	cropID  kernel.UUID
	details crop.Details

	guard guard.ConstructorGuard
}

func NewUpdateCropCommand(actor kernel.Actor, cropID kernel.UUID, details crop.Details) (UpdateCropCommand, error) {
	if err := errors.Join(
		validateActor(actor),
		requireID("crop id", cropID),
	); err != nil {
		return UpdateCropCommand{}, err
	}

	return UpdateCropCommand{
		actor:   actor,
		cropID:  cropID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCropCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCropCommandIsNotConstructed)
}

func (c UpdateCropCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateCropCommand) CropID() kernel.UUID {
	return c.cropID
}

func (c UpdateCropCommand) Details() crop.Details {
	return c.details
}
