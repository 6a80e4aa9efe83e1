package order

import (
	"errors"
	"fmt"
	"time"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// QuantityScale is the number of decimal places an ordered quantity may carry.
	QuantityScale = 3
	// TotalPriceScale covers the exact product of a quantity and a price in cents.
	TotalPriceScale = QuantityScale + 2
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a buyer's purchase request against one crop. It is the aggregate root
// for the order status state machine.
//
// Order follows these invariants:
//   - buyer and crop references are valid identifiers
//   - quantity is positive with at most three decimal places
//   - total price is fixed at placement as the exact product of quantity and price
//     per unit at that moment, is positive and is never recalculated
//   - status only moves along the edges documented on Status
//
// version is the optimistic concurrency token. It is assigned by storage and
// compared on every update so that racing buyer and farmer actions are detected.
type Order struct {
	id         kernel.UUID
	buyerID    kernel.UUID
	cropID     kernel.UUID
	quantity   decimal.Decimal
	totalPrice decimal.Decimal
	orderDate  time.Time
	status     Status
	version    int

	isConstructed bool
}

// NewOrder places a new order in Pending status.
//
// Parameters:
//   - id: identifier of the new order
//   - buyerID: the buyer placing the order
//   - cropID: the crop being ordered
//   - quantity: ordered amount in the crop's unit (must be positive)
//   - pricePerUnit: the crop's price at this moment; it is snapshotted into the total
//   - now: placement time, stored in UTC
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), buyerID, c.ID(), decimal.NewFromInt(50), c.PricePerUnit(), time.Now())
//	// with a price of 100 per unit: o.TotalPrice() == 5000, o.Status() == order.Pending
func NewOrder(
	id, buyerID, cropID kernel.UUID,
	quantity, pricePerUnit decimal.Decimal,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setCropID(cropID),
		o.setQuantity(quantity),
		o.setOrderDate(now),
	); err != nil {
		return nil, err
	}

	if !pricePerUnit.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"price per unit is invalid", fmt.Errorf("%s is not greater than 0", pricePerUnit),
		)
	}

	if err := o.setTotalPrice(quantity.Mul(pricePerUnit)); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. The stored total price is
// taken as is; it is never recomputed from the crop's current price.
func RestoreOrder(
	id, buyerID, cropID kernel.UUID,
	quantity, totalPrice decimal.Decimal,
	orderDate time.Time,
	status Status,
	version int,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setCropID(cropID),
		o.setQuantity(quantity),
		o.setOrderDate(orderDate),
		o.setStatus(status),
		o.setTotalPrice(totalPrice),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

func (o *Order) CropID() kernel.UUID {
	return o.cropID
}

func (o *Order) Quantity() decimal.Decimal {
	return o.quantity
}

// TotalPrice returns the price snapshotted at placement.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// OrderDate returns the placement time in UTC.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) Status() Status {
	return o.status
}

// Version returns the concurrency token the order was loaded with.
func (o *Order) Version() int {
	return o.version
}

// IsPlacedBy reports whether buyerID owns this order.
func (o *Order) IsPlacedBy(buyerID kernel.UUID) bool {
	return o.buyerID.IsEqual(buyerID)
}

// Accept confirms a pending order on the farmer's behalf.
//
// Returns an InvalidStateError, leaving the status untouched, unless the order is Pending.
func (o *Order) Accept() error {
	return o.transition(o.status.Accept)
}

// Reject declines a pending order on the farmer's behalf.
//
// Returns an InvalidStateError, leaving the status untouched, unless the order is Pending.
func (o *Order) Reject() error {
	return o.transition(o.status.Reject)
}

// CancelByBuyer withdraws a Pending or Accepted order.
func (o *Order) CancelByBuyer() error {
	return o.transition(o.status.CancelByBuyer)
}

// CancelByFarmer withdraws an Accepted order.
func (o *Order) CancelByFarmer() error {
	return o.transition(o.status.CancelByFarmer)
}

func (o *Order) transition(next func() (Status, error)) error {
	newStatus, err := next()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyer id", err)
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setCropID(cropID kernel.UUID) error {
	if err := cropID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("crop id", err)
	}
	o.cropID = cropID
	return nil
}

// setQuantity requires a positive amount with at most QuantityScale decimals.
func (o *Order) setQuantity(quantity decimal.Decimal) error {
	if err := ValidateQuantity(quantity); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", err)
	}
	o.quantity = quantity
	return nil
}

// ValidateQuantity reports why quantity cannot be ordered: it must be positive
// and carry at most QuantityScale decimal places.
func ValidateQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("%s is not greater than 0", quantity)
	}
	if !quantity.Equal(quantity.Round(QuantityScale)) {
		return fmt.Errorf("%s has more than %d decimal places", quantity, QuantityScale)
	}
	return nil
}

func (o *Order) setTotalPrice(totalPrice decimal.Decimal) error {
	if !totalPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("total price is invalid", fmt.Errorf("%s is not greater than 0", totalPrice))
	}
	if !totalPrice.Equal(totalPrice.Round(TotalPriceScale)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total price is invalid", fmt.Errorf("%s has more than %d decimal places", totalPrice, TotalPriceScale),
		)
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = orderDate.UTC()
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}
	o.version = version
	return nil
}
