package commands

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes one of the buyer's orders, whatever its status,
// together with every notification that references it.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(buyerID, orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := errors.Join(
		requireID("buyer id", buyerID),
		requireID("order id", orderID),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		buyerID: buyerID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
