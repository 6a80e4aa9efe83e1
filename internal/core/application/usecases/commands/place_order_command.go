package commands

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/pkg/errs"
	"harvesthub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a buyer's request to order part of a listed crop.
// The order identifier is assigned at construction so that callers can report it
// back before the handler runs.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(buyerID, cropID, decimal.NewFromInt(50))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	buyerID  kernel.UUID
	cropID   kernel.UUID
	quantity decimal.Decimal

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the identifiers and requires a positive quantity
// with at most order.QuantityScale decimal places.
func NewPlaceOrderCommand(buyerID, cropID kernel.UUID, quantity decimal.Decimal) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		orderID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setCropID(cropID),
		cmd.setQuantity(quantity),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c PlaceOrderCommand) CropID() kernel.UUID {
	return c.cropID
}

func (c PlaceOrderCommand) Quantity() decimal.Decimal {
	return c.quantity
}

func (c *PlaceOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyer id", err)
	}
	c.buyerID = buyerID
	return nil
}

func (c *PlaceOrderCommand) setCropID(cropID kernel.UUID) error {
	if err := cropID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("crop id", err)
	}
	c.cropID = cropID
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity decimal.Decimal) error {
	if err := order.ValidateQuantity(quantity); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}
	c.quantity = quantity
	return nil
}
