// Package commands contains the business operations that change order, crop and
// notification state. Every command is validated at construction time and handled
// inside a single unit of work: Begin, a deferred Rollback, then Commit.
package commands

import (
	"context"

	"harvesthub/internal/core/ports"
)

// Unit of Work interfaces scoped to what each group of handlers touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	CropRepoFactory interface {
		CropRepository() ports.CropRepository
	}

	BuyerRepoFactory interface {
		BuyerRepository() ports.BuyerRepository
	}

	FarmerRepoFactory interface {
		FarmerRepository() ports.FarmerRepository
	}

	ConversationRepoFactory interface {
		ConversationRepository() ports.ConversationRepository
	}

	ErrorLogRepoFactory interface {
		ErrorLogRepository() ports.ErrorLogRepository
	}

	// OrderUoW serves the order lifecycle: placing, responding to and cancelling
	// orders, each together with its notification.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orders := uow.OrderRepository()
	//   notifications := uow.NotificationRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
		CropRepoFactory
		BuyerRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeletionUoW serves the cascading deletions of orders and crops.
	DeletionUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
		CropRepoFactory
		ConversationRepoFactory
	}

	DeletionUoWFactory interface {
		Create() DeletionUoW
	}

	// NotificationUoW serves notification housekeeping.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// CropUoW serves crop listing and editing.
	CropUoW interface {
		TxManager
		CropRepoFactory
		FarmerRepoFactory
	}

	CropUoWFactory interface {
		Create() CropUoW
	}

	// ErrorLogUoW serves error log retention.
	ErrorLogUoW interface {
		TxManager
		ErrorLogRepoFactory
	}

	ErrorLogUoWFactory interface {
		Create() ErrorLogUoW
	}
)
