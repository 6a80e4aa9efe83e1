package commands

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrDeleteNotificationCommandIsNotConstructed = errors.New(
	"DeleteNotificationCommand must be created via NewDeleteNotificationCommand constructor",
)

type DeleteNotificationCommand struct { //nolint:recvcheck //using for validation
	farmerID       kernel.UUID
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteNotificationCommand(farmerID, notificationID kernel.UUID) (DeleteNotificationCommand, error) {
	if err := errors.Join(
		requireID("farmer id", farmerID),
		requireID("notification id", notificationID),
	); err != nil {
		return DeleteNotificationCommand{}, err
	}

	return DeleteNotificationCommand{
		farmerID:       farmerID,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNotificationCommandIsNotConstructed)
}

func (c DeleteNotificationCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

func (c DeleteNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}
