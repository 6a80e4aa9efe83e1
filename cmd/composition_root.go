package cmd

import (
	"log/slog"

	httpin "harvesthub/internal/adapters/in/http"
	"harvesthub/internal/adapters/out/postgres"
	"harvesthub/internal/adapters/out/postgres/errorlogrepo"
	"harvesthub/internal/core/application/diagnostics"
	"harvesthub/internal/core/application/usecases/commands"
	"harvesthub/internal/core/application/usecases/queries"
	"harvesthub/internal/core/domain/services"
	"harvesthub/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	planner    services.DeletionPlanner
	recorder   *diagnostics.Recorder
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		planner:    services.NewDeletionPlanner(),
		recorder:   diagnostics.NewRecorder(errorlogrepo.NewGormErrorLogRepository(gormDB), logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deletionUoWFactory() commands.DeletionUoWFactory {
	return FuncDeletionUoWFactory(func() commands.DeletionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cropUoWFactory() commands.CropUoWFactory {
	return FuncCropUoWFactory(func() commands.CropUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) errorLogUoWFactory() commands.ErrorLogUoWFactory {
	return FuncErrorLogUoWFactory(func() commands.ErrorLogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRespondToOrderCommandHandler() commands.RespondToOrderCommandHandler {
	return commands.NewRespondToOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.deletionUoWFactory(), c.planner)
}

func (c *CompositionRoot) CreateDeleteCropCommandHandler() commands.DeleteCropCommandHandler {
	return commands.NewDeleteCropCommandHandler(c.deletionUoWFactory(), c.planner)
}

func (c *CompositionRoot) CreateCreateCropCommandHandler() commands.CreateCropCommandHandler {
	return commands.NewCreateCropCommandHandler(c.cropUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCropCommandHandler() commands.UpdateCropCommandHandler {
	return commands.NewUpdateCropCommandHandler(c.cropUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	return commands.NewDeleteNotificationCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreatePurgeReadNotificationsCommandHandler() commands.PurgeReadNotificationsCommandHandler {
	return commands.NewPurgeReadNotificationsCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreatePurgeErrorLogsCommandHandler() commands.PurgeErrorLogsCommandHandler {
	return commands.NewPurgeErrorLogsCommandHandler(c.errorLogUoWFactory())
}

func (c *CompositionRoot) CreateListFarmerNotificationsQueryHandler() queries.ListFarmerNotificationsQueryHandler {
	return queries.NewListFarmerNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountUnreadNotificationsQueryHandler() queries.CountUnreadNotificationsQueryHandler {
	return queries.NewCountUnreadNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetErrorLogsQueryHandler() queries.GetErrorLogsQueryHandler {
	return queries.NewGetErrorLogsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) Recorder() *diagnostics.Recorder {
	return c.recorder
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		RespondToOrder:     c.CreateRespondToOrderCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		CreateCrop:         c.CreateCreateCropCommandHandler(),
		UpdateCrop:         c.CreateUpdateCropCommandHandler(),
		DeleteCrop:         c.CreateDeleteCropCommandHandler(),
		MarkRead:           c.CreateMarkNotificationReadCommandHandler(),
		DeleteNotification: c.CreateDeleteNotificationCommandHandler(),
		ListNotifications:  c.CreateListFarmerNotificationsQueryHandler(),
		CountUnread:        c.CreateCountUnreadNotificationsQueryHandler(),
		GetBuyerOrders:     c.CreateGetBuyerOrdersQueryHandler(),
		GetErrorLogs:       c.CreateGetErrorLogsQueryHandler(),
	}, c.recorder)
}

// CreateRouter wires the HTTP server into echo. The health check pings the database.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateHTTPServer(), c.logger, httpin.RouterOptions{
		ValidateRequests: c.cfg.API.ValidateRequests,
		HealthCheck: func() error {
			sqlDB, err := c.gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.Ping()
		},
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	notifications := c.CreatePurgeReadNotificationsCommandHandler()
	errorLogs := c.CreatePurgeErrorLogsCommandHandler()

	return jobs.NewJobManager(&notifications, &errorLogs, jobs.Settings{
		NotificationSchedule:  c.cfg.Jobs.NotificationSchedule,
		NotificationRetention: c.cfg.Jobs.NotificationRetention,
		ErrorLogSchedule:      c.cfg.Jobs.ErrorLogSchedule,
		ErrorLogRetention:     c.cfg.Jobs.ErrorLogRetention,
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeletionUoWFactory func() commands.DeletionUoW

func (f FuncDeletionUoWFactory) Create() commands.DeletionUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncCropUoWFactory func() commands.CropUoW

func (f FuncCropUoWFactory) Create() commands.CropUoW {
	return f()
}

type FuncErrorLogUoWFactory func() commands.ErrorLogUoW

func (f FuncErrorLogUoWFactory) Create() commands.ErrorLogUoW {
	return f()
}
