package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained from it use the transaction opened by Begin; before Begin
// they run directly against the database.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	NotificationRepository() NotificationRepository
	CropRepository() CropRepository
	BuyerRepository() BuyerRepository
	FarmerRepository() FarmerRepository
	ConversationRepository() ConversationRepository
	ErrorLogRepository() ErrorLogRepository
}
