package ports

import (
	"context"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The stored version starts at the aggregate's version.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order's status as a compare-and-swap on (id, version).
	// The stored version is incremented on success. When another writer got there
	// first, the row is left untouched and an error wrapping errs.ErrVersionIsInvalid
	// is returned.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCrop retrieves every order placed against cropID, of any status,
	// oldest first.
	GetAllByCrop(ctx context.Context, cropID kernel.UUID) ([]*order.Order, error)

	// DeleteByIDs removes the given orders. Notifications that reference them must
	// already be gone; otherwise storage refuses the delete.
	DeleteByIDs(ctx context.Context, ids []kernel.UUID) (int64, error)
}
