package commands

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	farmerID       kernel.UUID
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotificationReadCommand(farmerID, notificationID kernel.UUID) (MarkNotificationReadCommand, error) {
	if err := errors.Join(
		requireID("farmer id", farmerID),
		requireID("notification id", notificationID),
	); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return MarkNotificationReadCommand{
		farmerID:       farmerID,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}
