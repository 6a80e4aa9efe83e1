package commands

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
	"harvesthub/internal/pkg/guard"
)

var ErrDeleteCropCommandIsNotConstructed = errors.New(
	"DeleteCropCommand must be created via NewDeleteCropCommand constructor",
)

// DeleteCropCommand removes a crop listing and everything that hangs off it.
// Role checks happen in the handler; any valid actor can build the command.
type DeleteCropCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.Actor
	cropID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCropCommand(actor kernel.Actor, cropID kernel.UUID) (DeleteCropCommand, error) {
	if err := errors.Join(
		validateActor(actor),
		requireID("crop id", cropID),
	); err != nil {
		return DeleteCropCommand{}, err
	}

	return DeleteCropCommand{
		actor:  actor,
		cropID: cropID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func validateActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return nil
}

func (c DeleteCropCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCropCommandIsNotConstructed)
}

func (c DeleteCropCommand) Actor() kernel.Actor {
	return c.actor
}

func (c DeleteCropCommand) CropID() kernel.UUID {
	return c.cropID
}
