package queries

import (
	"context"
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
	"harvesthub/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountUnreadNotificationsQueryIsNotConstructed = errors.New(
	"CountUnreadNotificationsQuery must be created via NewCountUnreadNotificationsQuery constructor",
)

// CountUnreadNotificationsQuery feeds the unread badge on the farmer dashboard.
type CountUnreadNotificationsQuery struct {
	farmerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCountUnreadNotificationsQuery(farmerID kernel.UUID) (CountUnreadNotificationsQuery, error) {
	if err := farmerID.Validate(); err != nil {
		return CountUnreadNotificationsQuery{}, errs.NewValueIsRequiredErrorWithCause("farmer id", err)
	}
	return CountUnreadNotificationsQuery{farmerID: farmerID, guard: guard.NewConstructorGuard()}, nil
}

func (q CountUnreadNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrCountUnreadNotificationsQueryIsNotConstructed)
}

func (q CountUnreadNotificationsQuery) FarmerID() kernel.UUID {
	return q.farmerID
}

type CountUnreadNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewCountUnreadNotificationsQueryHandler(db *gorm.DB) CountUnreadNotificationsQueryHandler {
	return CountUnreadNotificationsQueryHandler{db: db}
}

func (h CountUnreadNotificationsQueryHandler) Handle(ctx context.Context, query CountUnreadNotificationsQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE farmer_id = ? AND is_read = ?
	`, query.FarmerID().Bytes(), false).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
