package commands_test

import (
	"testing"
	"time"

	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/notification"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/domain/model/participant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newBuyer(t *testing.T, name string) *participant.Buyer {
	t.Helper()
	b, err := participant.NewBuyer(kernel.NewUUID(), name)
	require.NoError(t, err)
	return b
}

func newFarmer(t *testing.T, name string) *participant.Farmer {
	t.Helper()
	f, err := participant.NewFarmer(kernel.NewUUID(), name)
	require.NoError(t, err)
	return f
}

func newCrop(t *testing.T, farmerID kernel.UUID, name string, price int64) *crop.Crop {
	t.Helper()
	c, err := crop.NewCrop(kernel.NewUUID(), farmerID, crop.Details{
		Name:         name,
		Variety:      crop.Wheat,
		Quantity:     decimal.NewFromInt(1000),
		Unit:         "kg",
		PricePerUnit: decimal.NewFromInt(price),
	}, nil, nil)
	require.NoError(t, err)
	return c
}

func restoreOrder(t *testing.T, buyerID kernel.UUID, c *crop.Crop, status order.Status) *order.Order {
	t.Helper()
	q := decimal.NewFromInt(10)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), buyerID, c.ID(), q, q.Mul(c.PricePerUnit()), time.Now().UTC(), status, 3,
	)
	require.NoError(t, err)
	return o
}

func newOrderNotification(t *testing.T, farmerID kernel.UUID, o *order.Order) *notification.Notification {
	t.Helper()
	n, err := notification.NewOrderNotification(
		kernel.NewUUID(), farmerID, o.ID(), notification.TypeOrder, "Ali", "Wheat",
		o.Quantity(), o.TotalPrice(), "new order", time.Now(),
	)
	require.NoError(t, err)
	return n
}

func newActor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}
