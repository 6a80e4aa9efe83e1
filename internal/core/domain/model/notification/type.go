package notification

import (
	"fmt"

	"harvesthub/internal/pkg/errs"
)

// Type tags what a notification is about. The value is persisted as is.
type Type string

const (
	// TypeOrder announces a newly placed order.
	TypeOrder Type = "Order"
	// TypeOrderCancelled announces that the buyer withdrew an order.
	TypeOrderCancelled Type = "OrderCancelled"
	// TypeCropDeleted announces that an administrator removed a crop. It never references an order.
	TypeCropDeleted Type = "CropDeleted"
)

func (t Type) Validate() error {
	switch t {
	case TypeOrder, TypeOrderCancelled, TypeCropDeleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("notification type", fmt.Errorf("%q is not a known type", string(t)))
	}
}

// RequiresOrder reports whether notifications of this type must reference an order.
func (t Type) RequiresOrder() bool {
	return t == TypeOrder || t == TypeOrderCancelled
}

func (t Type) String() string {
	return string(t)
}
