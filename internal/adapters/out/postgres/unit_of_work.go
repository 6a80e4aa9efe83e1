// Package postgres provides the GORM-based Unit of Work and schema setup for the
// HarvestHub order core.
//
// Every command runs inside one unit of work. Multi-step cascades such as a crop
// deletion therefore commit or roll back as a whole, and the children-before-parents
// order of each step is still checked by the restricting foreign keys.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if _, err := uow.NotificationRepository().DeleteByOrderIDs(ctx, ids); err != nil {
//	    return err
//	}
//	if _, err := uow.OrderRepository().DeleteByIDs(ctx, ids); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns at most one transaction and is not safe for
//     concurrent use; create one per command
//   - Concurrent status changes of the same order are detected by the order
//     repository's version check, not by locks
package postgres

import (
	"context"

	"harvesthub/internal/adapters/out/postgres/conversationrepo"
	"harvesthub/internal/adapters/out/postgres/croprepo"
	"harvesthub/internal/adapters/out/postgres/errorlogrepo"
	"harvesthub/internal/adapters/out/postgres/notificationrepo"
	"harvesthub/internal/adapters/out/postgres/orderrepo"
	"harvesthub/internal/adapters/out/postgres/partyrepo"
	"harvesthub/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction for a business operation.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open, which is the
// normal outcome of a deferred Rollback after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

func (uow *GormUnitOfWork) CropRepository() ports.CropRepository {
	return croprepo.NewGormCropRepository(uow.conn())
}

func (uow *GormUnitOfWork) BuyerRepository() ports.BuyerRepository {
	return partyrepo.NewGormBuyerRepository(uow.conn())
}

func (uow *GormUnitOfWork) FarmerRepository() ports.FarmerRepository {
	return partyrepo.NewGormFarmerRepository(uow.conn())
}

func (uow *GormUnitOfWork) ConversationRepository() ports.ConversationRepository {
	return conversationrepo.NewGormConversationRepository(uow.conn())
}

func (uow *GormUnitOfWork) ErrorLogRepository() ports.ErrorLogRepository {
	return errorlogrepo.NewGormErrorLogRepository(uow.conn())
}

// conn returns the open transaction, or the main connection before Begin and after
// Commit or Rollback.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
