// Package testdb opens throwaway databases with the production schema for tests.
package testdb

import (
	"testing"
	"time"

	"harvesthub/internal/adapters/out/postgres"
	"harvesthub/internal/adapters/out/postgres/croprepo"
	"harvesthub/internal/adapters/out/postgres/notificationrepo"
	"harvesthub/internal/adapters/out/postgres/orderrepo"
	"harvesthub/internal/adapters/out/postgres/partyrepo"
	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/notification"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/domain/model/participant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite returns a migrated in-memory SQLite database with foreign keys
// enforced. The pool is pinned to one connection because every new connection to
// ":memory:" would see an empty database.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, postgres.Migrate(t.Context(), db))

	return db
}

// SeedBuyer stores a buyer with the given display name.
func SeedBuyer(t testing.TB, db *gorm.DB, fullName string) *participant.Buyer {
	t.Helper()

	b, err := participant.NewBuyer(kernel.NewUUID(), fullName)
	require.NoError(t, err)
	require.NoError(t, partyrepo.NewGormBuyerRepository(db).Add(t.Context(), b))
	return b
}

// SeedFarmer stores a farmer with the given display name.
func SeedFarmer(t testing.TB, db *gorm.DB, fullName string) *participant.Farmer {
	t.Helper()

	f, err := participant.NewFarmer(kernel.NewUUID(), fullName)
	require.NoError(t, err)
	require.NoError(t, partyrepo.NewGormFarmerRepository(db).Add(t.Context(), f))
	return f
}

// SeedCrop lists a crop for farmerID with one image.
func SeedCrop(t testing.TB, db *gorm.DB, farmerID kernel.UUID, name string, price decimal.Decimal) *crop.Crop {
	t.Helper()

	img, err := crop.NewImage(kernel.NewUUID(), "/uploads/"+name+".jpg")
	require.NoError(t, err)

	c, err := crop.NewCrop(kernel.NewUUID(), farmerID, crop.Details{
		Name:         name,
		Variety:      crop.Wheat,
		Quantity:     decimal.NewFromInt(1000),
		Unit:         "kg",
		PricePerUnit: price,
	}, nil, []crop.Image{img})
	require.NoError(t, err)
	require.NoError(t, croprepo.NewGormCropRepository(db).Add(t.Context(), c))
	return c
}

// SeedOrder stores an order in the given status at version 0.
func SeedOrder(t testing.TB, db *gorm.DB, buyerID kernel.UUID, c *crop.Crop, quantity int64, status order.Status) *order.Order {
	t.Helper()

	q := decimal.NewFromInt(quantity)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), buyerID, c.ID(), q, q.Mul(c.PricePerUnit()), time.Now().UTC(), status, 0,
	)
	require.NoError(t, err)
	require.NoError(t, orderrepo.NewGormOrderRepository(db).Add(t.Context(), o))
	return o
}

// SeedOrderNotification stores an unread notification about o for farmerID.
func SeedOrderNotification(
	t testing.TB, db *gorm.DB, farmerID kernel.UUID, o *order.Order, kind notification.Type,
) *notification.Notification {
	t.Helper()

	n, err := notification.NewOrderNotification(
		kernel.NewUUID(), farmerID, o.ID(), kind, "Seeded Buyer", "Seeded Crop",
		o.Quantity(), o.TotalPrice(), "seeded", time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, notificationrepo.NewGormNotificationRepository(db).Add(t.Context(), n))
	return n
}

// Count returns the number of rows of model matching the condition.
func Count(t testing.TB, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
