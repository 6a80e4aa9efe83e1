package commands

import (
	"context"
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/ports"
	"harvesthub/internal/pkg/errs"
)

// RespondToOrderCommandHandler applies a farmer's accept or reject decision.
//
// The farmer must own the crop the order was placed against; any other order is
// reported as not found so that order ids of other farmers are not disclosed.
// The buyer is not notified of the decision and sees it in their order list.
//
// The status change is persisted with an optimistic version check. When the buyer
// cancelled the order in the meantime, Handle fails with errs.ErrVersionIsInvalid
// and nothing is written.
type RespondToOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRespondToOrderCommandHandler(uowFactory OrderUoWFactory) RespondToOrderCommandHandler {
	return RespondToOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RespondToOrderCommandHandler) Handle(ctx context.Context, cmd RespondToOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	cropRepo := uow.CropRepository()
	notificationRepo := uow.NotificationRepository()

	o, err := getFarmerOrder(ctx, orderRepo, cropRepo, cmd.FarmerID(), cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Decision() {
	case Accept:
		err = o.Accept()
	case Reject:
		err = o.Reject()
	default:
		err = cmd.Decision().Validate()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = markNotificationRead(ctx, notificationRepo, cmd.FarmerID(), cmd.NotificationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// getFarmerOrder loads an order placed against one of farmerID's crops.
func getFarmerOrder(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	cropRepo ports.CropRepository,
	farmerID, orderID kernel.UUID,
) (*order.Order, error) {
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	c, err := cropRepo.Get(ctx, o.CropID())
	if err != nil {
		return nil, err
	}

	if !c.IsOwnedBy(farmerID) {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}

	return o, nil
}

// markNotificationRead flags the farmer's notification as read. An absent id, a
// missing notification or one addressed to another farmer is ignored.
func markNotificationRead(
	ctx context.Context,
	repo ports.NotificationRepository,
	farmerID kernel.UUID,
	notificationID *kernel.UUID,
) error {
	if notificationID == nil {
		return nil
	}

	n, err := repo.Get(ctx, *notificationID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if !n.BelongsTo(farmerID) || !n.MarkRead() {
		return nil
	}

	return repo.Update(ctx, n)
}
