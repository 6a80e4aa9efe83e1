package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const maxDisplayNameLength = 200

// ErrNotificationIsNotConstructed is returned when a Notification was not created
// via one of its constructors.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewOrderNotification or NewCropDeletedNotification")

// Notification is an event record informing a farmer about an order or crop change.
//
// BuyerName, CropName, Quantity and TotalPrice are snapshots taken when the
// notification is created. They are never re-read from the buyer, crop or order,
// so historical notifications keep rendering after those records change or go away.
//
// A notification that references an order must be deleted before that order.
type Notification struct {
	id         kernel.UUID
	farmerID   kernel.UUID
	orderID    *kernel.UUID
	kind       Type
	buyerName  string
	cropName   string
	quantity   *decimal.Decimal
	totalPrice *decimal.Decimal
	isRead     bool
	createdAt  time.Time
	message    string

	isConstructed bool
}

// NewOrderNotification creates an unread notification about an order.
// kind must be an order-bound type (TypeOrder or TypeOrderCancelled).
func NewOrderNotification(
	id, farmerID, orderID kernel.UUID,
	kind Type,
	buyerName, cropName string,
	quantity, totalPrice decimal.Decimal,
	message string,
	now time.Time,
) (*Notification, error) {
	if !kind.RequiresOrder() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"notification type", fmt.Errorf("%q is not an order notification type", kind.String()),
		)
	}

	return build(id, farmerID, &orderID, kind, buyerName, cropName, &quantity, &totalPrice, false, now, message)
}

// NewCropDeletedNotification creates an unread, order-less notification telling a
// farmer that an administrator removed one of their crops.
func NewCropDeletedNotification(id, farmerID kernel.UUID, cropName, message string, now time.Time) (*Notification, error) {
	return build(id, farmerID, nil, TypeCropDeleted, "", cropName, nil, nil, false, now, message)
}

// RestoreNotification rebuilds a notification loaded from storage.
func RestoreNotification(
	id, farmerID kernel.UUID,
	orderID *kernel.UUID,
	kind Type,
	buyerName, cropName string,
	quantity, totalPrice *decimal.Decimal,
	isRead bool,
	createdAt time.Time,
	message string,
) (*Notification, error) {
	return build(id, farmerID, orderID, kind, buyerName, cropName, quantity, totalPrice, isRead, createdAt, message)
}

func build(
	id, farmerID kernel.UUID,
	orderID *kernel.UUID,
	kind Type,
	buyerName, cropName string,
	quantity, totalPrice *decimal.Decimal,
	isRead bool,
	createdAt time.Time,
	message string,
) (*Notification, error) {
	n := &Notification{isRead: isRead, isConstructed: true}

	if err := errors.Join(
		n.setID(id),
		n.setFarmerID(farmerID),
		n.setKind(kind, orderID),
		n.setOrderID(orderID),
		n.setBuyerName(buyerName),
		n.setCropName(cropName),
		n.setAmounts(quantity, totalPrice),
		n.setCreatedAt(createdAt),
		n.setMessage(message),
	); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) FarmerID() kernel.UUID {
	return n.farmerID
}

// OrderID returns the referenced order, or nil for order-less notifications.
func (n *Notification) OrderID() *kernel.UUID {
	if n.orderID == nil {
		return nil
	}
	id := *n.orderID
	return &id
}

// HasOrder reports whether the notification references an order.
func (n *Notification) HasOrder() bool {
	return n.orderID != nil
}

func (n *Notification) Type() Type {
	return n.kind
}

func (n *Notification) BuyerName() string {
	return n.buyerName
}

func (n *Notification) CropName() string {
	return n.cropName
}

// Quantity returns the ordered quantity snapshot, or nil.
func (n *Notification) Quantity() *decimal.Decimal {
	return copyDecimal(n.quantity)
}

// TotalPrice returns the total price snapshot, or nil.
func (n *Notification) TotalPrice() *decimal.Decimal {
	return copyDecimal(n.totalPrice)
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) Message() string {
	return n.message
}

// BelongsTo reports whether farmerID owns this notification.
func (n *Notification) BelongsTo(farmerID kernel.UUID) bool {
	return n.farmerID.IsEqual(farmerID)
}

// MarkRead flags the notification as read. It is idempotent and reports whether
// anything changed.
func (n *Notification) MarkRead() bool {
	if n.isRead {
		return false
	}
	n.isRead = true
	return true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("farmer id", err)
	}
	n.farmerID = farmerID
	return nil
}

func (n *Notification) setKind(kind Type, orderID *kernel.UUID) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if kind.RequiresOrder() && orderID == nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", fmt.Errorf("%s notifications reference an order", kind))
	}
	n.kind = kind
	return nil
}

func (n *Notification) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	id := *orderID
	n.orderID = &id
	return nil
}

func (n *Notification) setBuyerName(name string) error {
	name = strings.TrimSpace(name)
	if l := utf8.RuneCountInString(name); l > maxDisplayNameLength {
		return errs.NewValueIsOutOfRangeError("buyer name length", l, 0, maxDisplayNameLength)
	}
	n.buyerName = name
	return nil
}

func (n *Notification) setCropName(name string) error {
	name = strings.TrimSpace(name)
	if l := utf8.RuneCountInString(name); l > maxDisplayNameLength {
		return errs.NewValueIsOutOfRangeError("crop name length", l, 0, maxDisplayNameLength)
	}
	n.cropName = name
	return nil
}

func (n *Notification) setAmounts(quantity, totalPrice *decimal.Decimal) error {
	if quantity != nil && !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%s is not greater than 0", quantity))
	}
	if totalPrice != nil && totalPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total price is invalid", fmt.Errorf("%s is negative", totalPrice))
	}
	n.quantity = copyDecimal(quantity)
	n.totalPrice = copyDecimal(totalPrice)
	return nil
}

func (n *Notification) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	n.createdAt = createdAt.UTC()
	return nil
}

func (n *Notification) setMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
