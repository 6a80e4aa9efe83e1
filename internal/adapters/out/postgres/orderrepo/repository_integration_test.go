//go:build integration

package orderrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "harvesthub/internal/adapters/out/postgres"
	"harvesthub/internal/adapters/out/postgres/orderrepo"
	"harvesthub/internal/adapters/out/postgres/testdb"
	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/domain/model/participant"
	"harvesthub/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify numeric precision and the version check.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository

	buyer *participant.Buyer
	crop  *crop.Crop
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE notifications, orders, crop_images, crops, buyers, farmers",
	).Error)

	farmer := testdb.SeedFarmer(suite.T(), suite.db, "Bashir")
	suite.buyer = testdb.SeedBuyer(suite.T(), suite.db, "Ali")
	suite.crop = testdb.SeedCrop(suite.T(), suite.db, farmer.ID(), "Wheat", decimal.RequireFromString("99.99"))
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_KeepsExactAmounts() {
	ctx := context.Background()
	o, err := order.NewOrder(kernel.NewUUID(), suite.buyer.ID(), suite.crop.ID(),
		decimal.RequireFromString("12.345"), suite.crop.PricePerUnit(), time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(decimal.RequireFromString("12.345").Equal(stored.Quantity()))
	suite.True(decimal.RequireFromString("1234.37655").Equal(stored.TotalPrice()))
	suite.Equal(order.Pending, stored.Status())
	suite.Equal(0, stored.Version())
	suite.WithinDuration(o.OrderDate(), stored.OrderDate(), time.Millisecond)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions() {
	ctx := context.Background()
	seeded := testdb.SeedOrder(suite.T(), suite.db, suite.buyer.ID(), suite.crop, 10, order.Pending)

	accepted, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(accepted.Accept())
	suite.Require().NoError(suite.repository.Update(ctx, accepted))

	cancelled, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, cancelled.Status())
	suite.Require().NoError(cancelled.CancelByFarmer())
	suite.Require().NoError(suite.repository.Update(ctx, cancelled))

	stored, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, stored.Status())
	suite.Equal(2, stored.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	seeded := testdb.SeedOrder(suite.T(), suite.db, suite.buyer.ID(), suite.crop, 10, order.Pending)

	first, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, seeded.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Reject())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Accept())
	suite.Require().ErrorIs(suite.repository.Update(ctx, second), errs.ErrVersionIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCrop_ReturnsEveryStatus() {
	ctx := context.Background()
	testdb.SeedOrder(suite.T(), suite.db, suite.buyer.ID(), suite.crop, 1, order.Pending)
	testdb.SeedOrder(suite.T(), suite.db, suite.buyer.ID(), suite.crop, 2, order.Rejected)
	testdb.SeedOrder(suite.T(), suite.db, suite.buyer.ID(), suite.crop, 3, order.Cancelled)

	orders, err := suite.repository.GetAllByCrop(ctx, suite.crop.ID())

	suite.Require().NoError(err)
	suite.Len(orders, 3)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
