package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"harvesthub/cmd"
	httpin "harvesthub/internal/adapters/in/http"
	"harvesthub/internal/adapters/out/postgres/errorlogrepo"
	"harvesthub/internal/adapters/out/postgres/notificationrepo"
	"harvesthub/internal/adapters/out/postgres/orderrepo"
	"harvesthub/internal/adapters/out/postgres/testdb"
	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/notification"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/domain/model/participant"
	"harvesthub/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ServerTestSuite struct {
	suite.Suite

	db     *gorm.DB
	e      *echo.Echo
	buyer  *participant.Buyer
	farmer *participant.Farmer
	crop   *crop.Crop
}

func (suite *ServerTestSuite) SetupTest() {
	suite.db = testdb.OpenSQLite(suite.T())

	cfg := cmd.Config{API: cmd.APIConfig{ValidateRequests: true}}
	root := cmd.NewCompositionRoot(cfg, suite.db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e, err := root.CreateRouter()
	suite.Require().NoError(err)
	suite.e = e

	suite.buyer = testdb.SeedBuyer(suite.T(), suite.db, "Ali Raza")
	suite.farmer = testdb.SeedFarmer(suite.T(), suite.db, "Bashir Ahmed")
	suite.crop = testdb.SeedCrop(suite.T(), suite.db, suite.farmer.ID(), "Basmati", decimal.NewFromInt(120))
}

func (suite *ServerTestSuite) do(method, target string, role kernel.Role, actorID *kernel.UUID, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if actorID != nil {
		req.Header.Set(httpin.ActorIDHeader, actorID.String())
		req.Header.Set(httpin.ActorRoleHeader, role.String())
	}

	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) asBuyer(method, target, body string) *httptest.ResponseRecorder {
	id := suite.buyer.ID()
	return suite.do(method, target, kernel.Buyer, &id, body)
}

func (suite *ServerTestSuite) asFarmer(method, target, body string) *httptest.ResponseRecorder {
	id := suite.farmer.ID()
	return suite.do(method, target, kernel.Farmer, &id, body)
}

func (suite *ServerTestSuite) asAdmin(method, target, body string) *httptest.ResponseRecorder {
	id := kernel.NewUUID()
	return suite.do(method, target, kernel.Admin, &id, body)
}

func (suite *ServerTestSuite) decodeError(rec *httptest.ResponseRecorder) servers.Error {
	var resp servers.Error
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (suite *ServerTestSuite) placeOrder(quantity string) kernel.UUID {
	rec := suite.asBuyer(http.MethodPost, "/api/v1/orders",
		`{"cropId":"`+suite.crop.ID().String()+`","quantity":"`+quantity+`"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created servers.CreatedId
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	id, err := kernel.UUIDFromString(created.Id.String())
	suite.Require().NoError(err)
	return id
}

func (suite *ServerTestSuite) storedOrder(id kernel.UUID) *order.Order {
	o, err := orderrepo.NewGormOrderRepository(suite.db).Get(suite.T().Context(), id)
	suite.Require().NoError(err)
	return o
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", kernel.UnknownRole, nil, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
}

func (suite *ServerTestSuite) TestSwaggerDocument() {
	rec := suite.do(http.MethodGet, "/swagger/doc.json", kernel.UnknownRole, nil, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "/api/v1/orders")
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	rec := suite.asBuyer(http.MethodGet, "/api/v1/unknown", "")

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal(http.StatusNotFound, suite.decodeError(rec).Code)
}

func (suite *ServerTestSuite) TestPlaceOrder() {
	suite.Run("should create the order and notify the farmer", func() {
		orderID := suite.placeOrder("10")

		o := suite.storedOrder(orderID)
		suite.Equal(order.Pending, o.Status())
		suite.True(decimal.NewFromInt(1200).Equal(o.TotalPrice()))

		rec := suite.asFarmer(http.MethodGet, "/api/v1/notifications", "")
		suite.Require().Equal(http.StatusOK, rec.Code)

		var items []servers.Notification
		suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &items))
		suite.Require().Len(items, 1)
		suite.Equal(servers.NotificationTypeOrder, items[0].Type)
		suite.Equal("Ali Raza", items[0].BuyerName)
		suite.Require().NotNil(items[0].Order)
		suite.Equal(servers.Pending, items[0].Order.Status)
		suite.Equal([]string{"/uploads/Basmati.jpg"}, items[0].Order.ImageUrls)
		suite.Require().NotNil(items[0].TotalPrice)
		suite.Equal("1200.00", *items[0].TotalPrice)

		rec = suite.asFarmer(http.MethodGet, "/api/v1/notifications/unread-count", "")
		suite.JSONEq(`{"count":1}`, rec.Body.String())
	})

	suite.Run("should require an actor", func() {
		rec := suite.do(http.MethodPost, "/api/v1/orders", kernel.UnknownRole, nil,
			`{"cropId":"`+suite.crop.ID().String()+`","quantity":"1"}`)

		suite.Equal(http.StatusUnauthorized, rec.Code)
	})

	suite.Run("should reject a malformed actor", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		req.Header.Set(httpin.ActorIDHeader, "not-a-uuid")
		req.Header.Set(httpin.ActorRoleHeader, "Buyer")
		rec := httptest.NewRecorder()
		suite.e.ServeHTTP(rec, req)

		suite.Equal(http.StatusUnauthorized, rec.Code)
	})

	suite.Run("should forbid farmers", func() {
		rec := suite.asFarmer(http.MethodPost, "/api/v1/orders",
			`{"cropId":"`+suite.crop.ID().String()+`","quantity":"1"}`)

		suite.Equal(http.StatusForbidden, rec.Code)
	})

	suite.Run("should reject a malformed quantity before it reaches the core", func() {
		rec := suite.asBuyer(http.MethodPost, "/api/v1/orders",
			`{"cropId":"`+suite.crop.ID().String()+`","quantity":"ten"}`)

		suite.Equal(http.StatusBadRequest, rec.Code)
	})

	suite.Run("should reject a non-positive quantity", func() {
		before := testdb.Count(suite.T(), suite.db, &orderrepo.OrderDTO{}, "1 = 1")

		rec := suite.asBuyer(http.MethodPost, "/api/v1/orders",
			`{"cropId":"`+suite.crop.ID().String()+`","quantity":"0"}`)

		suite.Equal(http.StatusBadRequest, rec.Code)
		suite.Equal(before, testdb.Count(suite.T(), suite.db, &orderrepo.OrderDTO{}, "1 = 1"))
	})

	suite.Run("should report an unknown crop", func() {
		rec := suite.asBuyer(http.MethodPost, "/api/v1/orders",
			`{"cropId":"`+kernel.NewUUID().String()+`","quantity":"1"}`)

		suite.Equal(http.StatusNotFound, rec.Code)
		suite.Equal("Crop not found. / فصل نہیں ملا۔", suite.decodeError(rec).Message)
	})
}

func (suite *ServerTestSuite) TestRespondToOrder() {
	suite.Run("should accept and mark the triggering notification read", func() {
		orderID := suite.placeOrder("5")
		n := testdb.SeedOrderNotification(suite.T(), suite.db, suite.farmer.ID(), suite.storedOrder(orderID), notification.TypeOrder)

		rec := suite.asFarmer(http.MethodPost,
			"/api/v1/orders/"+orderID.String()+"/accept?notificationId="+n.ID().String(), "")
		suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		suite.Equal(order.Accepted, suite.storedOrder(orderID).Status())
		stored, err := notificationrepo.NewGormNotificationRepository(suite.db).Get(suite.T().Context(), n.ID())
		suite.Require().NoError(err)
		suite.True(stored.IsRead())

		rec = suite.asBuyer(http.MethodGet, "/api/v1/orders", "")
		var orders []servers.BuyerOrder
		suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &orders))
		suite.Require().NotEmpty(orders)
		suite.Equal(servers.Accepted, orders[0].Status)
		suite.Equal("Bashir Ahmed", orders[0].FarmerName)
	})

	suite.Run("should refuse to reject an accepted order", func() {
		orderID := suite.placeOrder("5")
		suite.Require().Equal(http.StatusNoContent,
			suite.asFarmer(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/accept", "").Code)

		rec := suite.asFarmer(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/reject", "")

		suite.Equal(http.StatusConflict, rec.Code)
		suite.Equal(order.Accepted, suite.storedOrder(orderID).Status())
	})

	suite.Run("should hide orders on other farmers' crops", func() {
		orderID := suite.placeOrder("5")
		other := testdb.SeedFarmer(suite.T(), suite.db, "Other Farmer")
		otherID := other.ID()

		rec := suite.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/accept", kernel.Farmer, &otherID, "")

		suite.Equal(http.StatusNotFound, rec.Code)
	})

	suite.Run("should reject a malformed order id", func() {
		rec := suite.asFarmer(http.MethodPost, "/api/v1/orders/not-a-uuid/accept", "")

		suite.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (suite *ServerTestSuite) TestCancelOrder() {
	suite.Run("should let the buyer cancel a pending order", func() {
		orderID := suite.placeOrder("3")

		rec := suite.asBuyer(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel", "")

		suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
		suite.Equal(order.Cancelled, suite.storedOrder(orderID).Status())
		suite.Equal(int64(1), testdb.Count(suite.T(), suite.db, &notificationrepo.NotificationDTO{},
			"order_id = ? AND notification_type = ?", orderID.Bytes(), notification.TypeOrderCancelled.String()))
	})

	suite.Run("should tell the farmer a pending order cannot be cancelled", func() {
		orderID := suite.placeOrder("3")

		rec := suite.asFarmer(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel", "")

		suite.Equal(http.StatusConflict, rec.Code)
		suite.Contains(suite.decodeError(rec).Message, "cannot be cancelled")
		suite.Equal(order.Pending, suite.storedOrder(orderID).Status())
	})

	suite.Run("should forbid admins", func() {
		orderID := suite.placeOrder("3")

		rec := suite.asAdmin(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel", "")

		suite.Equal(http.StatusForbidden, rec.Code)
	})
}

func (suite *ServerTestSuite) TestDeleteOrder() {
	suite.Run("should delete the order and its notifications", func() {
		orderID := suite.placeOrder("2")

		rec := suite.asBuyer(http.MethodDelete, "/api/v1/orders/"+orderID.String(), "")

		suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
		suite.Zero(testdb.Count(suite.T(), suite.db, &orderrepo.OrderDTO{}, "id = ?", orderID.Bytes()))
		suite.Zero(testdb.Count(suite.T(), suite.db, &notificationrepo.NotificationDTO{}, "order_id = ?", orderID.Bytes()))
	})

	suite.Run("should forbid another buyer", func() {
		orderID := suite.placeOrder("2")
		otherID := testdb.SeedBuyer(suite.T(), suite.db, "Other Buyer").ID()

		rec := suite.do(http.MethodDelete, "/api/v1/orders/"+orderID.String(), kernel.Buyer, &otherID, "")

		suite.Equal(http.StatusForbidden, rec.Code)
		suite.Equal(int64(1), testdb.Count(suite.T(), suite.db, &orderrepo.OrderDTO{}, "id = ?", orderID.Bytes()))
	})
}

func (suite *ServerTestSuite) TestCrops() {
	suite.Run("should list, edit and delete a crop", func() {
		rec := suite.asFarmer(http.MethodPost, "/api/v1/crops",
			`{"name":"Desi Chickpea","variety":"Pulses","quantity":"400","pricePerUnit":"210.5","imageUrls":["/uploads/chana.jpg"]}`)
		suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		var created servers.CreatedId
		suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
		target := "/api/v1/crops/" + created.Id.String()

		rec = suite.asFarmer(http.MethodPut, target,
			`{"name":"Desi Chickpea","variety":"Pulses","quantity":"350","unit":"kg","pricePerUnit":"199"}`)
		suite.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		rec = suite.asFarmer(http.MethodDelete, target, "")
		suite.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	})

	suite.Run("should reject an unknown variety", func() {
		rec := suite.asFarmer(http.MethodPost, "/api/v1/crops",
			`{"name":"Mystery","variety":"Tea","quantity":"1","pricePerUnit":"1"}`)

		suite.Equal(http.StatusBadRequest, rec.Code)
	})

	suite.Run("should block deletion while orders are active", func() {
		suite.placeOrder("4")

		rec := suite.asFarmer(http.MethodDelete, "/api/v1/crops/"+suite.crop.ID().String(), "")

		suite.Equal(http.StatusConflict, rec.Code)
		resp := suite.decodeError(rec)
		suite.Require().NotNil(resp.Count)
		suite.Positive(*resp.Count)
	})

	suite.Run("should forbid buyers", func() {
		rec := suite.asBuyer(http.MethodDelete, "/api/v1/crops/"+suite.crop.ID().String(), "")

		suite.Equal(http.StatusForbidden, rec.Code)
	})
}

func (suite *ServerTestSuite) TestNotifications() {
	orderID := suite.placeOrder("1")
	n := testdb.SeedOrderNotification(suite.T(), suite.db, suite.farmer.ID(), suite.storedOrder(orderID), notification.TypeOrder)

	suite.Run("should mark read idempotently", func() {
		for range 2 {
			rec := suite.asFarmer(http.MethodPost, "/api/v1/notifications/"+n.ID().String()+"/read", "")
			suite.Equal(http.StatusNoContent, rec.Code)
		}
	})

	suite.Run("should ignore unknown notifications when marking read", func() {
		rec := suite.asFarmer(http.MethodPost, "/api/v1/notifications/"+kernel.NewUUID().String()+"/read", "")

		suite.Equal(http.StatusNoContent, rec.Code)
	})

	suite.Run("should delete a single notification", func() {
		rec := suite.asFarmer(http.MethodDelete, "/api/v1/notifications/"+n.ID().String(), "")
		suite.Equal(http.StatusNoContent, rec.Code)

		rec = suite.asFarmer(http.MethodDelete, "/api/v1/notifications/"+n.ID().String(), "")
		suite.Equal(http.StatusNotFound, rec.Code)
	})
}

func (suite *ServerTestSuite) TestErrorLogs() {
	suite.Run("should be admin only", func() {
		rec := suite.asBuyer(http.MethodGet, "/api/v1/admin/error-logs", "")

		suite.Equal(http.StatusForbidden, rec.Code)
	})

	suite.Run("should reject a limit above the maximum", func() {
		rec := suite.asAdmin(http.MethodGet, "/api/v1/admin/error-logs?limit=501", "")

		suite.Equal(http.StatusBadRequest, rec.Code)
	})

	suite.Run("should record unexpected failures and show them to admins", func() {
		suite.Require().NoError(suite.db.Migrator().DropTable(&notificationrepo.NotificationDTO{}))

		rec := suite.asFarmer(http.MethodGet, "/api/v1/notifications", "")
		suite.Equal(http.StatusInternalServerError, rec.Code)
		suite.NotContains(rec.Body.String(), "no such table")

		suite.Equal(int64(1), testdb.Count(suite.T(), suite.db, &errorlogrepo.ErrorLogDTO{},
			"action = ?", "ListNotifications"))

		rec = suite.asAdmin(http.MethodGet, "/api/v1/admin/error-logs?limit=10", "")
		suite.Require().Equal(http.StatusOK, rec.Code)
		var entries []servers.ErrorLog
		suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &entries))
		suite.Require().Len(entries, 1)
		suite.Equal("ListNotifications", entries[0].Action)
		suite.Require().NotNil(entries[0].ActorId)
		suite.Equal(suite.farmer.ID().String(), entries[0].ActorId.String())
		suite.Nil(entries[0].EntityId)
	})
}

func (suite *ServerTestSuite) TestErrorLogsNameTheTargetedEntity() {
	orderID := suite.placeOrder("10")
	suite.Require().NoError(suite.db.Migrator().DropTable(&notificationrepo.NotificationDTO{}))

	rec := suite.asBuyer(http.MethodDelete, "/api/v1/orders/"+orderID.String(), "")
	suite.Require().Equal(http.StatusInternalServerError, rec.Code, rec.Body.String())

	var stored errorlogrepo.ErrorLogDTO
	suite.Require().NoError(suite.db.Where("action = ?", "DeleteOrder").First(&stored).Error)
	suite.Require().NotNil(stored.EntityID)
	suite.Equal(orderID.String(), stored.EntityID.String())

	rec = suite.asAdmin(http.MethodGet, "/api/v1/admin/error-logs", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var entries []servers.ErrorLog
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &entries))
	suite.Require().Len(entries, 1)
	suite.Equal("DeleteOrder", entries[0].Action)
	suite.Require().NotNil(entries[0].EntityId)
	suite.Equal(orderID.String(), entries[0].EntityId.String())
	suite.Require().NotNil(entries[0].ActorId)
	suite.Equal(suite.buyer.ID().String(), entries[0].ActorId.String())
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
