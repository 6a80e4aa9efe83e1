package commands

import (
	"context"
	"time"

	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/notification"
	"harvesthub/internal/core/domain/services"
	"harvesthub/internal/pkg/errs"
)

// DeleteCropCommandHandler removes a crop on behalf of its farmer or an administrator.
//
// The crop may only go once every order placed against it is Cancelled. Otherwise
// Handle returns *services.ActiveOrdersExistError carrying the number of blocking
// orders, and nothing is touched. When the crop can go, the cancelled orders'
// notifications, the cancelled orders, the crop's conversations with their
// messages, its images and finally the crop itself are deleted in that order,
// all inside one transaction.
//
// When an administrator removes a crop, its farmer receives a "CropDeleted"
// notification in the same transaction.
type DeleteCropCommandHandler struct {
	uowFactory DeletionUoWFactory
	planner    services.DeletionPlanner
}

func NewDeleteCropCommandHandler(uowFactory DeletionUoWFactory, planner services.DeletionPlanner) DeleteCropCommandHandler {
	return DeleteCropCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
	}
}

func (h *DeleteCropCommandHandler) Handle(ctx context.Context, cmd DeleteCropCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Is(kernel.Farmer) && !actor.Is(kernel.Admin) {
		return errs.NewAccessIsForbiddenError("crop", cmd.CropID())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	executor := newPlanExecutor(uow)

	c, err := executor.crops.Get(ctx, cmd.CropID())
	if err != nil {
		return err
	}

	if actor.Is(kernel.Farmer) && !c.IsOwnedBy(actor.ID()) {
		return errs.NewAccessIsForbiddenError("crop", cmd.CropID())
	}

	orders, err := executor.orders.GetAllByCrop(ctx, c.ID())
	if err != nil {
		return err
	}

	plan, err := h.planner.PlanCropDeletion(c, orders)
	if err != nil {
		return err
	}

	if err = executor.Execute(ctx, plan); err != nil {
		return err
	}

	if actor.Is(kernel.Admin) {
		if err = notifyCropDeleted(ctx, executor, c); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func notifyCropDeleted(ctx context.Context, executor planExecutor, c *crop.Crop) error {
	n, err := notification.NewCropDeletedNotification(
		kernel.NewUUID(), c.FarmerID(), c.Name(), notification.CropDeletedMessage(c.Name()), time.Now(),
	)
	if err != nil {
		return err
	}
	return executor.notifications.Add(ctx, n)
}
