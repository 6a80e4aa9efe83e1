package commands

import (
	"errors"
	"fmt"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
	"harvesthub/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand withdraws an order on behalf of its buyer or of the farmer
// who owns the crop. Administrators do not cancel orders.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	actor          kernel.Actor
	orderID        kernel.UUID
	notificationID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(actor kernel.Actor, orderID kernel.UUID, notificationID *kernel.UUID) (CancelOrderCommand, error) {
	if err := errors.Join(
		validateCancellingActor(actor),
		requireID("order id", orderID),
		optionalID("notification id", notificationID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		actor:          actor,
		orderID:        orderID,
		notificationID: copyID(notificationID),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func validateCancellingActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if !actor.Is(kernel.Buyer) && !actor.Is(kernel.Farmer) {
		return errs.NewValueIsInvalidErrorWithCause(
			"actor role", fmt.Errorf("%s cannot cancel orders", actor.Role()),
		)
	}
	return nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NotificationID returns the notification to mark read on the farmer path, or nil.
func (c CancelOrderCommand) NotificationID() *kernel.UUID {
	return copyID(c.notificationID)
}
