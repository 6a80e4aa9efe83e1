package commands

import (
	"context"
	"fmt"

	"harvesthub/internal/core/domain/services"
	"harvesthub/internal/core/ports"
)

// planExecutor runs a DeletionPlan against the repositories of one unit of work.
// Steps run strictly in plan order; the first failure stops the plan and leaves
// the rollback to the caller.
type planExecutor struct {
	orders        ports.OrderRepository
	notifications ports.NotificationRepository
	crops         ports.CropRepository
	conversations ports.ConversationRepository
}

func newPlanExecutor(uow DeletionUoW) planExecutor {
	return planExecutor{
		orders:        uow.OrderRepository(),
		notifications: uow.NotificationRepository(),
		crops:         uow.CropRepository(),
		conversations: uow.ConversationRepository(),
	}
}

func (e planExecutor) Execute(ctx context.Context, plan services.DeletionPlan) error {
	for _, step := range plan.Steps() {
		if err := e.run(ctx, step); err != nil {
			return fmt.Errorf("%s: %w", step.Kind(), err)
		}
	}
	return nil
}

func (e planExecutor) run(ctx context.Context, step services.DeletionStep) error {
	var err error
	switch s := step.(type) {
	case services.DeleteOrderNotifications:
		_, err = e.notifications.DeleteByOrderIDs(ctx, s.OrderIDs)
	case services.DeleteOrders:
		_, err = e.orders.DeleteByIDs(ctx, s.OrderIDs)
	case services.DeleteCropConversations:
		_, err = e.conversations.DeleteByCrop(ctx, s.CropID)
	case services.DeleteCropImages:
		_, err = e.crops.DeleteImages(ctx, s.CropID)
	case services.DeleteCrop:
		err = e.crops.Delete(ctx, s.CropID)
	default:
		err = fmt.Errorf("unsupported deletion step %T", step)
	}
	return err
}
