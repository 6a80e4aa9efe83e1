package commands_test

import (
	"errors"
	"testing"

	"harvesthub/internal/core/application/usecases/commands"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/notification"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderMocks struct {
	uow           *MockUoW
	factory       *MockOrderUoWFactory
	orders        *MockOrderRepository
	crops         *MockCropRepository
	buyers        *MockBuyerRepository
	notifications *MockNotificationRepository
}

func newOrderMocks() orderMocks {
	m := orderMocks{
		uow:           new(MockUoW),
		factory:       new(MockOrderUoWFactory),
		orders:        new(MockOrderRepository),
		crops:         new(MockCropRepository),
		buyers:        new(MockBuyerRepository),
		notifications: new(MockNotificationRepository),
	}
	m.factory.On("Create").Return(m.uow).Once()
	return m
}

func (m orderMocks) assert(t *testing.T) {
	m.uow.AssertExpectations(t)
	m.factory.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.crops.AssertExpectations(t)
	m.buyers.AssertExpectations(t)
	m.notifications.AssertExpectations(t)
}

func TestRespondToOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should accept a pending order and mark the notification read", func(t *testing.T) {
		ctx := t.Context()
		farmerID := kernel.NewUUID()
		c := newCrop(t, farmerID, "Wheat", 100)
		o := restoreOrder(t, kernel.NewUUID(), c, order.Pending)
		n := newOrderNotification(t, farmerID, o)
		notificationID := n.ID()
		cmd, err := commands.NewRespondToOrderCommand(farmerID, o.ID(), &notificationID, commands.Accept)
		require.NoError(t, err)

		m := newOrderMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.orders).Once(),
			m.uow.On("CropRepository").Return(m.crops).Once(),
			m.uow.On("NotificationRepository").Return(m.notifications).Once(),
			m.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
			m.crops.On("Get", mock.Anything, c.ID()).Return(c, nil).Once(),
			m.orders.On("Update", mock.Anything, mock.MatchedBy(func(got *order.Order) bool {
				return got.Status() == order.Accepted
			})).Return(nil).Once(),
			m.notifications.On("Get", mock.Anything, n.ID()).Return(n, nil).Once(),
			m.notifications.On("Update", mock.Anything, mock.MatchedBy(func(got *notification.Notification) bool {
				return got.IsRead()
			})).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewRespondToOrderCommandHandler(m.factory)
		require.NoError(t, h.Handle(ctx, cmd))
		m.assert(t)
	})

	t.Run("should reject a pending order without a notification", func(t *testing.T) {
		ctx := t.Context()
		farmerID := kernel.NewUUID()
		c := newCrop(t, farmerID, "Wheat", 100)
		o := restoreOrder(t, kernel.NewUUID(), c, order.Pending)
		cmd, _ := commands.NewRespondToOrderCommand(farmerID, o.ID(), nil, commands.Reject)

		m := newOrderMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.orders).Once(),
			m.uow.On("CropRepository").Return(m.crops).Once(),
			m.uow.On("NotificationRepository").Return(m.notifications).Once(),
			m.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
			m.crops.On("Get", mock.Anything, c.ID()).Return(c, nil).Once(),
			m.orders.On("Update", mock.Anything, o).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewRespondToOrderCommandHandler(m.factory)
		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, order.Rejected, o.Status())
		m.notifications.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		m.assert(t)
	})

	t.Run("should hide orders of other farmers", func(t *testing.T) {
		ctx := t.Context()
		c := newCrop(t, kernel.NewUUID(), "Wheat", 100)
		o := restoreOrder(t, kernel.NewUUID(), c, order.Pending)
		cmd, _ := commands.NewRespondToOrderCommand(kernel.NewUUID(), o.ID(), nil, commands.Accept)

		m := newOrderMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.orders).Once(),
			m.uow.On("CropRepository").Return(m.crops).Once(),
			m.uow.On("NotificationRepository").Return(m.notifications).Once(),
			m.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
			m.crops.On("Get", mock.Anything, c.ID()).Return(c, nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewRespondToOrderCommandHandler(m.factory)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, order.Pending, o.Status())
		m.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.assert(t)
	})

	t.Run("should refuse to accept an accepted order", func(t *testing.T) {
		ctx := t.Context()
		farmerID := kernel.NewUUID()
		c := newCrop(t, farmerID, "Wheat", 100)
		o := restoreOrder(t, kernel.NewUUID(), c, order.Accepted)
		cmd, _ := commands.NewRespondToOrderCommand(farmerID, o.ID(), nil, commands.Accept)

		m := newOrderMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.orders).Once(),
			m.uow.On("CropRepository").Return(m.crops).Once(),
			m.uow.On("NotificationRepository").Return(m.notifications).Once(),
			m.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
			m.crops.On("Get", mock.Anything, c.ID()).Return(c, nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewRespondToOrderCommandHandler(m.factory)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		m.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.assert(t)
	})

	t.Run("should surface a lost version race", func(t *testing.T) {
		ctx := t.Context()
		farmerID := kernel.NewUUID()
		c := newCrop(t, farmerID, "Wheat", 100)
		o := restoreOrder(t, kernel.NewUUID(), c, order.Pending)
		cmd, _ := commands.NewRespondToOrderCommand(farmerID, o.ID(), nil, commands.Accept)

		m := newOrderMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.orders).Once(),
			m.uow.On("CropRepository").Return(m.crops).Once(),
			m.uow.On("NotificationRepository").Return(m.notifications).Once(),
			m.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
			m.crops.On("Get", mock.Anything, c.ID()).Return(c, nil).Once(),
			m.orders.On("Update", mock.Anything, o).
				Return(errs.NewVersionIsInvalidErrorWithCause("order", errors.New("stale"))).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewRespondToOrderCommandHandler(m.factory)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
		m.assert(t)
	})

	t.Run("should ignore a notification addressed to another farmer", func(t *testing.T) {
		ctx := t.Context()
		farmerID := kernel.NewUUID()
		c := newCrop(t, farmerID, "Wheat", 100)
		o := restoreOrder(t, kernel.NewUUID(), c, order.Pending)
		foreign := newOrderNotification(t, kernel.NewUUID(), o)
		foreignID := foreign.ID()
		cmd, _ := commands.NewRespondToOrderCommand(farmerID, o.ID(), &foreignID, commands.Accept)

		m := newOrderMocks()
		mock.InOrder(
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.uow.On("OrderRepository").Return(m.orders).Once(),
			m.uow.On("CropRepository").Return(m.crops).Once(),
			m.uow.On("NotificationRepository").Return(m.notifications).Once(),
			m.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
			m.crops.On("Get", mock.Anything, c.ID()).Return(c, nil).Once(),
			m.orders.On("Update", mock.Anything, o).Return(nil).Once(),
			m.notifications.On("Get", mock.Anything, foreignID).Return(foreign, nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewRespondToOrderCommandHandler(m.factory)
		require.NoError(t, h.Handle(ctx, cmd))
		assert.False(t, foreign.IsRead())
		m.notifications.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.assert(t)
	})

	t.Run("should not touch storage for an unconstructed command", func(t *testing.T) {
		factory := new(MockOrderUoWFactory)
		h := commands.NewRespondToOrderCommandHandler(factory)

		err := h.Handle(t.Context(), commands.RespondToOrderCommand{})

		require.ErrorIs(t, err, commands.ErrRespondToOrderCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}
