package queries

import (
	"errors"
	"time"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
	"harvesthub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListFarmerNotificationsQueryIsNotConstructed = errors.New(
	"ListFarmerNotificationsQuery must be created via NewListFarmerNotificationsQuery constructor",
)

// ListFarmerNotificationsQuery loads a farmer's notification list, newest first.
//
// Example:
//
//	query, _ := NewListFarmerNotificationsQuery(farmerID)
//	handler := NewListFarmerNotificationsQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	for _, item := range items {
//	    if item.Order != nil {
//	        fmt.Printf("%s: order is %s\n", item.Message, item.Order.Status)
//	    }
//	}
type ListFarmerNotificationsQuery struct {
	farmerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListFarmerNotificationsQuery(farmerID kernel.UUID) (ListFarmerNotificationsQuery, error) {
	if err := farmerID.Validate(); err != nil {
		return ListFarmerNotificationsQuery{}, errs.NewValueIsRequiredErrorWithCause("farmer id", err)
	}
	return ListFarmerNotificationsQuery{farmerID: farmerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListFarmerNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListFarmerNotificationsQueryIsNotConstructed)
}

func (q ListFarmerNotificationsQuery) FarmerID() kernel.UUID {
	return q.farmerID
}

// ListFarmerNotificationsQueryResponse is one row of the farmer's list. The
// snapshot fields are what the notification recorded when it was created. Order
// is the current state of the referenced order and is nil for notifications
// without one, such as crop deletions.
type ListFarmerNotificationsQueryResponse struct {
	ID         kernel.UUID
	OrderID    *kernel.UUID
	Type       string
	BuyerName  string
	CropName   string
	Quantity   *decimal.Decimal
	TotalPrice *decimal.Decimal
	IsRead     bool
	CreatedAt  time.Time
	Message    string
	Order      *NotificationOrderView
}

// NotificationOrderView is the live order behind a notification.
type NotificationOrderView struct {
	Status    string
	OrderDate time.Time
	BuyerName string
	CropName  string
	ImageURLs []string
}
