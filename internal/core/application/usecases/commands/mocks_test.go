package commands_test

import (
	"context"
	"time"

	"harvesthub/internal/core/application/usecases/commands"
	"harvesthub/internal/core/domain/model/conversation"
	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/errorlog"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/notification"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/domain/model/participant"
	"harvesthub/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllByCrop(ctx context.Context, cropID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, cropID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) DeleteByIDs(ctx context.Context, ids []kernel.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return int64(args.Int(0)), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationRepository) DeleteByOrderIDs(ctx context.Context, orderIDs []kernel.UUID) (int64, error) {
	args := m.Called(ctx, orderIDs)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return int64(args.Int(0)), args.Error(1)
}

type MockCropRepository struct{ mock.Mock }

func (m *MockCropRepository) Add(ctx context.Context, c *crop.Crop) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCropRepository) Update(ctx context.Context, c *crop.Crop) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCropRepository) Get(ctx context.Context, id kernel.UUID) (*crop.Crop, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*crop.Crop)
	return c, args.Error(1)
}

func (m *MockCropRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCropRepository) DeleteImages(ctx context.Context, cropID kernel.UUID) (int64, error) {
	args := m.Called(ctx, cropID)
	return int64(args.Int(0)), args.Error(1)
}

type MockBuyerRepository struct{ mock.Mock }

func (m *MockBuyerRepository) Add(ctx context.Context, b *participant.Buyer) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBuyerRepository) Get(ctx context.Context, id kernel.UUID) (*participant.Buyer, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*participant.Buyer)
	return b, args.Error(1)
}

type MockFarmerRepository struct{ mock.Mock }

func (m *MockFarmerRepository) Add(ctx context.Context, f *participant.Farmer) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFarmerRepository) Get(ctx context.Context, id kernel.UUID) (*participant.Farmer, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*participant.Farmer)
	return f, args.Error(1)
}

type MockConversationRepository struct{ mock.Mock }

func (m *MockConversationRepository) Add(ctx context.Context, c *conversation.Conversation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConversationRepository) DeleteByCrop(ctx context.Context, cropID kernel.UUID) (int64, error) {
	args := m.Called(ctx, cropID)
	return int64(args.Int(0)), args.Error(1)
}

type MockErrorLogRepository struct{ mock.Mock }

func (m *MockErrorLogRepository) Add(ctx context.Context, e *errorlog.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockErrorLogRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return int64(args.Int(0)), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) CropRepository() ports.CropRepository {
	args := m.Called()
	return args.Get(0).(ports.CropRepository)
}

func (m *MockUoW) BuyerRepository() ports.BuyerRepository {
	args := m.Called()
	return args.Get(0).(ports.BuyerRepository)
}

func (m *MockUoW) FarmerRepository() ports.FarmerRepository {
	args := m.Called()
	return args.Get(0).(ports.FarmerRepository)
}

func (m *MockUoW) ConversationRepository() ports.ConversationRepository {
	args := m.Called()
	return args.Get(0).(ports.ConversationRepository)
}

func (m *MockUoW) ErrorLogRepository() ports.ErrorLogRepository {
	args := m.Called()
	return args.Get(0).(ports.ErrorLogRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeletionUoWFactory struct{ mock.Mock }

func (m *MockDeletionUoWFactory) Create() commands.DeletionUoW {
	args := m.Called()
	return args.Get(0).(commands.DeletionUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockCropUoWFactory struct{ mock.Mock }

func (m *MockCropUoWFactory) Create() commands.CropUoW {
	args := m.Called()
	return args.Get(0).(commands.CropUoW)
}

type MockErrorLogUoWFactory struct{ mock.Mock }

func (m *MockErrorLogUoWFactory) Create() commands.ErrorLogUoW {
	args := m.Called()
	return args.Get(0).(commands.ErrorLogUoW)
}
