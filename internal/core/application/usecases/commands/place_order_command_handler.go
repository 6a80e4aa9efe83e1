package commands

import (
	"context"
	"time"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/notification"
	"harvesthub/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler places orders and tells the crop's farmer about them.
//
// The order and its "Order" notification are written in the same unit of work,
// so a farmer never sees a notification for an order that was not stored, and an
// order is never stored without its notification.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(buyerID, cropID, decimal.NewFromInt(50))
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the crop and the buyer, snapshots the crop's current price into
// the order total and stores the order in Pending status. A missing crop or buyer
// is reported as errs.ErrObjectNotFound and nothing is written.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cropRepo := uow.CropRepository()
	buyerRepo := uow.BuyerRepository()
	orderRepo := uow.OrderRepository()
	notificationRepo := uow.NotificationRepository()

	c, err := cropRepo.Get(ctx, cmd.CropID())
	if err != nil {
		return kernel.UUID{}, err
	}

	buyer, err := buyerRepo.Get(ctx, cmd.BuyerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now()
	o, err := order.NewOrder(cmd.OrderID(), buyer.ID(), c.ID(), cmd.Quantity(), c.PricePerUnit(), now)
	if err != nil {
		return kernel.UUID{}, err
	}

	n, err := notification.NewOrderNotification(
		kernel.NewUUID(), c.FarmerID(), o.ID(), notification.TypeOrder,
		buyer.FullName(), c.Name(), o.Quantity(), o.TotalPrice(),
		notification.OrderPlacedMessage(buyer.FullName(), o.Quantity(), c.Unit(), c.Name()),
		now,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = notificationRepo.Add(ctx, n); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}
