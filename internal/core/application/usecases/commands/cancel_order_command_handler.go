package commands

import (
	"context"
	"time"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/notification"
	"harvesthub/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels orders for buyers and farmers.
//
// Buyer path: the buyer must have placed the order, which may be Pending or
// Accepted. The crop's farmer receives an "OrderCancelled" notification carrying
// the buyer's name and the order amounts.
//
// Farmer path: the farmer must own the crop and the order must be Accepted. The
// notification that prompted the cancellation is marked read. No notification is
// sent to the buyer.
//
// Both paths fail with errs.ErrInvalidState when the status does not allow the
// cancellation, and with errs.ErrVersionIsInvalid when another actor changed the
// order concurrently.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	var err error
	if cmd.Actor().Is(kernel.Buyer) {
		err = h.cancelByBuyer(ctx, uow, cmd)
	} else {
		err = h.cancelByFarmer(ctx, uow, cmd)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CancelOrderCommandHandler) cancelByBuyer(ctx context.Context, uow OrderUoW, cmd CancelOrderCommand) error {
	orderRepo := uow.OrderRepository()
	cropRepo := uow.CropRepository()
	buyerRepo := uow.BuyerRepository()
	notificationRepo := uow.NotificationRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.IsPlacedBy(cmd.Actor().ID()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if err = o.CancelByBuyer(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	c, err := cropRepo.Get(ctx, o.CropID())
	if err != nil {
		return err
	}

	buyer, err := buyerRepo.Get(ctx, o.BuyerID())
	if err != nil {
		return err
	}

	n, err := notification.NewOrderNotification(
		kernel.NewUUID(), c.FarmerID(), o.ID(), notification.TypeOrderCancelled,
		buyer.FullName(), c.Name(), o.Quantity(), o.TotalPrice(),
		notification.OrderCancelledMessage(buyer.FullName(), o.Quantity(), c.Unit(), c.Name()),
		time.Now(),
	)
	if err != nil {
		return err
	}

	return notificationRepo.Add(ctx, n)
}

func (h *CancelOrderCommandHandler) cancelByFarmer(ctx context.Context, uow OrderUoW, cmd CancelOrderCommand) error {
	orderRepo := uow.OrderRepository()
	cropRepo := uow.CropRepository()
	notificationRepo := uow.NotificationRepository()

	o, err := getFarmerOrder(ctx, orderRepo, cropRepo, cmd.Actor().ID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.CancelByFarmer(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return markNotificationRead(ctx, notificationRepo, cmd.Actor().ID(), cmd.NotificationID())
}
