package services

import (
	"fmt"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
)

// DeletionStep is one entry of a DeletionPlan. The concrete step types below are
// the only implementations; executors switch on them exhaustively.
type DeletionStep interface {
	// Kind names the step for logs and diagnostics.
	Kind() string
	deletionStep()
}

// DeleteOrderNotifications removes every notification that references one of OrderIDs.
type DeleteOrderNotifications struct {
	OrderIDs []kernel.UUID
}

// DeleteOrders removes the orders themselves.
type DeleteOrders struct {
	OrderIDs []kernel.UUID
}

// DeleteCropConversations removes conversations about a crop, messages first.
type DeleteCropConversations struct {
	CropID kernel.UUID
}

// DeleteCropImages removes the stored image records of a crop.
type DeleteCropImages struct {
	CropID kernel.UUID
}

// DeleteCrop removes the crop row. It is always the last step of a crop plan.
type DeleteCrop struct {
	CropID kernel.UUID
}

func (DeleteOrderNotifications) Kind() string { return "delete_order_notifications" }
func (DeleteOrders) Kind() string             { return "delete_orders" }
func (DeleteCropConversations) Kind() string  { return "delete_crop_conversations" }
func (DeleteCropImages) Kind() string         { return "delete_crop_images" }
func (DeleteCrop) Kind() string               { return "delete_crop" }

func (DeleteOrderNotifications) deletionStep() {}
func (DeleteOrders) deletionStep()             {}
func (DeleteCropConversations) deletionStep()  {}
func (DeleteCropImages) deletionStep()         {}
func (DeleteCrop) deletionStep()               {}

// DeletionPlan is an ordered list of deletions, children before parents.
type DeletionPlan struct {
	steps []DeletionStep
}

// Steps returns the steps in execution order.
func (p DeletionPlan) Steps() []DeletionStep {
	return append([]DeletionStep(nil), p.steps...)
}

// Kinds returns the kind of every step in execution order.
func (p DeletionPlan) Kinds() []string {
	kinds := make([]string, 0, len(p.steps))
	for _, s := range p.steps {
		kinds = append(kinds, s.Kind())
	}
	return kinds
}

func (p DeletionPlan) IsEmpty() bool {
	return len(p.steps) == 0
}

// ActiveOrdersExistError blocks a crop deletion while non-cancelled orders reference it.
type ActiveOrdersExistError struct {
	CropID kernel.UUID
	Count  int
}

func NewActiveOrdersExistError(cropID kernel.UUID, count int) *ActiveOrdersExistError {
	return &ActiveOrdersExistError{CropID: cropID, Count: count}
}

func (e *ActiveOrdersExistError) Error() string {
	return fmt.Sprintf("%s: crop %s has %d active order(s)", errs.ErrConstraintViolation, e.CropID, e.Count)
}

func (e *ActiveOrdersExistError) Unwrap() error {
	return errs.ErrConstraintViolation
}
