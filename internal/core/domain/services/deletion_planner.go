package services

import (
	"fmt"

	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/pkg/errs"
)

// DeletionPlanner is a domain service that decides which records must go, and in
// which order, before an order or a crop can be removed.
//
// Business rules:
//   - Notifications go before the orders they reference
//   - Orders go before the crop they were placed against
//   - A crop with any non-cancelled order cannot be deleted at all
//   - Conversations and images are removed before the crop row
//
// The planner never touches storage. Callers execute the returned plan inside a
// single unit of work so that a failing step rolls the whole cascade back.
//
// Example usage:
//
//	planner := services.NewDeletionPlanner()
//	plan, err := planner.PlanCropDeletion(c, ordersOfCrop)
//	var active *services.ActiveOrdersExistError
//	if errors.As(err, &active) {
//	    // active.Count orders still need to be resolved
//	    return
//	}
//	for _, step := range plan.Steps() {
//	    // execute step
//	}
type DeletionPlanner struct{}

// NewDeletionPlanner creates a new DeletionPlanner instance.
func NewDeletionPlanner() DeletionPlanner {
	return DeletionPlanner{}
}

// PlanOrderDeletion plans the removal of a single order of any status.
//
// Returns:
//   - DeletionPlan: [DeleteOrderNotifications, DeleteOrders]
//   - error: when the order is not constructed
func (p DeletionPlanner) PlanOrderDeletion(o *order.Order) (DeletionPlan, error) {
	if err := o.Validate(); err != nil {
		return DeletionPlan{}, err
	}

	ids := []kernel.UUID{o.ID()}
	return DeletionPlan{steps: []DeletionStep{
		DeleteOrderNotifications{OrderIDs: ids},
		DeleteOrders{OrderIDs: ids},
	}}, nil
}

// PlanCropDeletion plans the removal of a crop together with its history.
//
// Parameters:
//   - c: the crop to delete
//   - orders: every order that references the crop, of any status
//
// Returns:
//   - DeletionPlan: notifications and orders of cancelled orders, then
//     conversations, images and finally the crop itself. Order steps are
//     omitted when the crop has no orders.
//   - error: *ActiveOrdersExistError when any order is not cancelled, or a
//     validation error when an order belongs to a different crop
func (p DeletionPlanner) PlanCropDeletion(c *crop.Crop, orders []*order.Order) (DeletionPlan, error) {
	if err := c.Validate(); err != nil {
		return DeletionPlan{}, err
	}

	var (
		cancelled []kernel.UUID
		active    int
	)
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return DeletionPlan{}, err
		}
		if !o.CropID().IsEqual(c.ID()) {
			return DeletionPlan{}, errs.NewValueIsInvalidErrorWithCause(
				"orders", fmt.Errorf("order %s belongs to crop %s", o.ID(), o.CropID()),
			)
		}
		if o.Status().IsActive() {
			active++
			continue
		}
		cancelled = append(cancelled, o.ID())
	}

	if active > 0 {
		return DeletionPlan{}, NewActiveOrdersExistError(c.ID(), active)
	}

	steps := make([]DeletionStep, 0, 5)
	if len(cancelled) > 0 {
		steps = append(steps,
			DeleteOrderNotifications{OrderIDs: cancelled},
			DeleteOrders{OrderIDs: cancelled},
		)
	}
	steps = append(steps,
		DeleteCropConversations{CropID: c.ID()},
		DeleteCropImages{CropID: c.ID()},
		DeleteCrop{CropID: c.ID()},
	)

	return DeletionPlan{steps: steps}, nil
}
