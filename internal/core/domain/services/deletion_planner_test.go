package services_test

import (
	"errors"
	"testing"
	"time"

	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/domain/services"
	"harvesthub/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCrop(t *testing.T) *crop.Crop {
	t.Helper()
	c, err := crop.NewCrop(kernel.NewUUID(), kernel.NewUUID(), crop.Details{
		Name:         "Wheat",
		Variety:      crop.Wheat,
		Quantity:     decimal.NewFromInt(1000),
		Unit:         "kg",
		PricePerUnit: decimal.NewFromInt(100),
	}, nil, nil)
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, cropID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), cropID,
		decimal.NewFromInt(5), decimal.NewFromInt(500), time.Now(), status, 1,
	)
	require.NoError(t, err)
	return o
}

func TestDeletionPlanner_PlanOrderDeletion(t *testing.T) {
	t.Run("should delete notifications before the order", func(t *testing.T) {
		o := newOrder(t, kernel.NewUUID(), order.Accepted)

		plan, err := services.NewDeletionPlanner().PlanOrderDeletion(o)

		require.NoError(t, err)
		assert.Equal(t, []string{"delete_order_notifications", "delete_orders"}, plan.Kinds())
		steps := plan.Steps()
		assert.Equal(t, []kernel.UUID{o.ID()}, steps[0].(services.DeleteOrderNotifications).OrderIDs)
		assert.Equal(t, []kernel.UUID{o.ID()}, steps[1].(services.DeleteOrders).OrderIDs)
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		_, err := services.NewDeletionPlanner().PlanOrderDeletion(nil)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestDeletionPlanner_PlanCropDeletion(t *testing.T) {
	planner := services.NewDeletionPlanner()

	t.Run("should count active orders and refuse", func(t *testing.T) {
		c := newCrop(t)
		orders := []*order.Order{
			newOrder(t, c.ID(), order.Cancelled),
			newOrder(t, c.ID(), order.Accepted),
		}

		plan, err := planner.PlanCropDeletion(c, orders)

		require.ErrorIs(t, err, errs.ErrConstraintViolation)
		var active *services.ActiveOrdersExistError
		require.True(t, errors.As(err, &active))
		assert.Equal(t, 1, active.Count)
		assert.True(t, plan.IsEmpty())
	})

	t.Run("should treat rejected and pending orders as active", func(t *testing.T) {
		c := newCrop(t)
		orders := []*order.Order{
			newOrder(t, c.ID(), order.Rejected),
			newOrder(t, c.ID(), order.Pending),
		}

		_, err := planner.PlanCropDeletion(c, orders)

		var active *services.ActiveOrdersExistError
		require.ErrorAs(t, err, &active)
		assert.Equal(t, 2, active.Count)
	})

	t.Run("should order children before the crop", func(t *testing.T) {
		c := newCrop(t)
		first := newOrder(t, c.ID(), order.Cancelled)
		second := newOrder(t, c.ID(), order.Cancelled)

		plan, err := planner.PlanCropDeletion(c, []*order.Order{first, second})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"delete_order_notifications",
			"delete_orders",
			"delete_crop_conversations",
			"delete_crop_images",
			"delete_crop",
		}, plan.Kinds())
		assert.Equal(t, []kernel.UUID{first.ID(), second.ID()},
			plan.Steps()[0].(services.DeleteOrderNotifications).OrderIDs)
		assert.Equal(t, c.ID(), plan.Steps()[4].(services.DeleteCrop).CropID)
	})

	t.Run("should skip order steps for a crop without orders", func(t *testing.T) {
		c := newCrop(t)

		plan, err := planner.PlanCropDeletion(c, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"delete_crop_conversations", "delete_crop_images", "delete_crop"}, plan.Kinds())
	})

	t.Run("should reject orders of another crop", func(t *testing.T) {
		c := newCrop(t)

		_, err := planner.PlanCropDeletion(c, []*order.Order{newOrder(t, kernel.NewUUID(), order.Cancelled)})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
