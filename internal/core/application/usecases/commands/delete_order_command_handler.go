package commands

import (
	"context"

	"harvesthub/internal/core/domain/services"
	"harvesthub/internal/pkg/errs"
)

// DeleteOrderCommandHandler deletes a buyer's order. Notifications referencing the
// order are removed first and the order afterwards, in one transaction, so the
// order row never disappears while a notification still points at it.
//
// Example:
//
//	handler := NewDeleteOrderCommandHandler(uowFactory, services.NewDeletionPlanner())
//	cmd, _ := NewDeleteOrderCommand(buyerID, orderID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrAccessIsForbidden) {
//	    // the order belongs to another buyer
//	}
type DeleteOrderCommandHandler struct {
	uowFactory DeletionUoWFactory
	planner    services.DeletionPlanner
}

func NewDeleteOrderCommandHandler(uowFactory DeletionUoWFactory, planner services.DeletionPlanner) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	executor := newPlanExecutor(uow)

	o, err := executor.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.IsPlacedBy(cmd.BuyerID()) {
		return errs.NewAccessIsForbiddenError("order", cmd.OrderID())
	}

	plan, err := h.planner.PlanOrderDeletion(o)
	if err != nil {
		return err
	}

	if err = executor.Execute(ctx, plan); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
