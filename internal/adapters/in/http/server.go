package http

import (
	"net/http"
	"strings"

	"harvesthub/internal/core/application/diagnostics"
	"harvesthub/internal/core/application/usecases/commands"
	"harvesthub/internal/core/application/usecases/queries"
	"harvesthub/internal/core/domain/model/crop"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Action names recorded in the error log.
const (
	actionPlaceOrder         = "PlaceOrder"
	actionRespondToOrder     = "RespondToOrder"
	actionCancelOrder        = "CancelOrder"
	actionDeleteOrder        = "DeleteOrder"
	actionCreateCrop         = "CreateCrop"
	actionUpdateCrop         = "UpdateCrop"
	actionDeleteCrop         = "DeleteCrop"
	actionListNotifications  = "ListNotifications"
	actionCountUnread        = "CountUnreadNotifications"
	actionMarkRead           = "MarkNotificationRead"
	actionDeleteNotification = "DeleteNotification"
	actionGetBuyerOrders     = "GetBuyerOrders"
	actionGetErrorLogs       = "GetErrorLogs"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	PlaceOrder         commands.PlaceOrderCommandHandler
	RespondToOrder     commands.RespondToOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	CreateCrop         commands.CreateCropCommandHandler
	UpdateCrop         commands.UpdateCropCommandHandler
	DeleteCrop         commands.DeleteCropCommandHandler
	MarkRead           commands.MarkNotificationReadCommandHandler
	DeleteNotification commands.DeleteNotificationCommandHandler

	ListNotifications queries.ListFarmerNotificationsQueryHandler
	CountUnread       queries.CountUnreadNotificationsQueryHandler
	GetBuyerOrders    queries.GetBuyerOrdersQueryHandler
	GetErrorLogs      queries.GetErrorLogsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h        Handlers
	recorder *diagnostics.Recorder
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
// Unexpected failures are reported to recorder.
func NewServer(handlers Handlers, recorder *diagnostics.Recorder) *Server {
	return &Server{
		h:        handlers,
		recorder: recorder,
	}
}

// PlaceOrder handles POST /api/v1/orders. The total price is computed from the
// crop's current price and frozen on the order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actor, ok, err := requireActor(ctx, kernel.Buyer)
	if !ok {
		return err
	}

	var body servers.PlaceOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cropID, err := toKernelID(body.CropId)
	if err != nil {
		return badRequest(ctx, err)
	}
	quantity, err := decimal.NewFromString(body.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(actor.ID(), cropID, quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, actionPlaceOrder, &actor, &cropID, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedId{Id: orderID.Bytes()})
}

// GetBuyerOrders handles GET /api/v1/orders, the buyer's "My Orders" list.
func (s *Server) GetBuyerOrders(ctx echo.Context, params servers.GetBuyerOrdersParams) error {
	actor, ok, err := requireActor(ctx, kernel.Buyer)
	if !ok {
		return err
	}

	query, err := queries.NewGetBuyerOrdersQuery(actor.ID(), limitOf(params.Limit))
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.h.GetBuyerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, actionGetBuyerOrders, &actor, nil, err)
	}

	response := make([]servers.BuyerOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.BuyerOrder{
			Id:         o.ID.Bytes(),
			CropId:     o.CropID.Bytes(),
			CropName:   o.CropName,
			Unit:       o.Unit,
			FarmerName: o.FarmerName,
			Quantity:   o.Quantity.String(),
			TotalPrice: formatMoney(o.TotalPrice),
			OrderDate:  o.OrderDate,
			Status:     servers.OrderStatus(o.Status),
			ImageUrls:  nonNil(o.ImageURLs),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderID servers.OrderId, params servers.AcceptOrderParams) error {
	return s.respond(ctx, orderID, params.NotificationId, commands.Accept)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderID servers.OrderId, params servers.RejectOrderParams) error {
	return s.respond(ctx, orderID, params.NotificationId, commands.Reject)
}

func (s *Server) respond(ctx echo.Context, rawOrderID uuid.UUID, rawNotificationID *uuid.UUID, decision commands.Decision) error {
	actor, ok, err := requireActor(ctx, kernel.Farmer)
	if !ok {
		return err
	}

	orderID, err := toKernelID(rawOrderID)
	if err != nil {
		return badRequest(ctx, err)
	}
	notificationID, err := toOptionalKernelID(rawNotificationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRespondToOrderCommand(actor.ID(), orderID, notificationID, decision)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.RespondToOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, actionRespondToOrder, &actor, &orderID, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel for buyers and farmers.
func (s *Server) CancelOrder(ctx echo.Context, rawOrderID servers.OrderId, params servers.CancelOrderParams) error {
	actor, ok, err := requireActor(ctx, kernel.Buyer, kernel.Farmer)
	if !ok {
		return err
	}

	orderID, err := toKernelID(rawOrderID)
	if err != nil {
		return badRequest(ctx, err)
	}
	notificationID, err := toOptionalKernelID(params.NotificationId)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actor, orderID, notificationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, actionCancelOrder, &actor, &orderID, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}. The order's notifications
// go first, in the same transaction.
func (s *Server) DeleteOrder(ctx echo.Context, rawOrderID servers.OrderId) error {
	actor, ok, err := requireActor(ctx, kernel.Buyer)
	if !ok {
		return err
	}

	orderID, err := toKernelID(rawOrderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(actor.ID(), orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, actionDeleteOrder, &actor, &orderID, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCrop handles POST /api/v1/crops.
func (s *Server) CreateCrop(ctx echo.Context) error {
	actor, ok, err := requireActor(ctx, kernel.Farmer)
	if !ok {
		return err
	}

	var body servers.CreateCropJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	details, err := toCropDetails(servers.CropDetails{
		Description:  body.Description,
		Name:         body.Name,
		PricePerUnit: body.PricePerUnit,
		Quantity:     body.Quantity,
		Unit:         body.Unit,
		Variety:      body.Variety,
	})
	if err != nil {
		return badRequest(ctx, err)
	}
	reportID, err := toOptionalKernelID(body.ReportId)
	if err != nil {
		return badRequest(ctx, err)
	}
	var imageURLs []string
	if body.ImageUrls != nil {
		imageURLs = *body.ImageUrls
	}

	cmd, err := commands.NewCreateCropCommand(actor.ID(), details, imageURLs, reportID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cropID, err := s.h.CreateCrop.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, actionCreateCrop, &actor, nil, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedId{Id: cropID.Bytes()})
}

// UpdateCrop handles PUT /api/v1/crops/{cropId}. Existing orders keep the price
// they were placed at.
func (s *Server) UpdateCrop(ctx echo.Context, rawCropID servers.CropId) error {
	actor, ok, err := requireActor(ctx, kernel.Farmer, kernel.Admin)
	if !ok {
		return err
	}

	cropID, err := toKernelID(rawCropID)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.UpdateCropJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}
	details, err := toCropDetails(body)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateCropCommand(actor, cropID, details)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.UpdateCrop.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, actionUpdateCrop, &actor, &cropID, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCrop handles DELETE /api/v1/crops/{cropId}. It answers 409 with the
// number of blocking orders while any order on the crop is still active.
func (s *Server) DeleteCrop(ctx echo.Context, rawCropID servers.CropId) error {
	actor, ok, err := requireActor(ctx, kernel.Farmer, kernel.Admin)
	if !ok {
		return err
	}

	cropID, err := toKernelID(rawCropID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteCropCommand(actor, cropID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.DeleteCrop.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, actionDeleteCrop, &actor, &cropID, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context) error {
	actor, ok, err := requireActor(ctx, kernel.Farmer)
	if !ok {
		return err
	}

	query, err := queries.NewListFarmerNotificationsQuery(actor.ID())
	if err != nil {
		return badRequest(ctx, err)
	}

	items, err := s.h.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, actionListNotifications, &actor, nil, err)
	}

	response := make([]servers.Notification, len(items))
	for i, item := range items {
		n := servers.Notification{
			Id:        item.ID.Bytes(),
			Type:      servers.NotificationType(item.Type),
			BuyerName: item.BuyerName,
			CropName:  item.CropName,
			IsRead:    item.IsRead,
			CreatedAt: item.CreatedAt,
			Message:   item.Message,
		}
		if item.OrderID != nil {
			id := item.OrderID.Bytes()
			n.OrderId = &id
		}
		if item.Quantity != nil {
			q := item.Quantity.String()
			n.Quantity = &q
		}
		if item.TotalPrice != nil {
			p := formatMoney(*item.TotalPrice)
			n.TotalPrice = &p
		}
		if item.Order != nil {
			n.Order = &servers.NotificationOrder{
				Status:    servers.OrderStatus(item.Order.Status),
				OrderDate: item.Order.OrderDate,
				BuyerName: item.Order.BuyerName,
				CropName:  item.Order.CropName,
				ImageUrls: nonNil(item.Order.ImageURLs),
			}
		}
		response[i] = n
	}

	return ctx.JSON(http.StatusOK, response)
}

// CountUnreadNotifications handles GET /api/v1/notifications/unread-count.
func (s *Server) CountUnreadNotifications(ctx echo.Context) error {
	actor, ok, err := requireActor(ctx, kernel.Farmer)
	if !ok {
		return err
	}

	query, err := queries.NewCountUnreadNotificationsQuery(actor.ID())
	if err != nil {
		return badRequest(ctx, err)
	}

	count, err := s.h.CountUnread.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, actionCountUnread, &actor, nil, err)
	}

	return ctx.JSON(http.StatusOK, servers.UnreadCount{Count: count})
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read.
// It succeeds for unknown or foreign notifications without changing anything.
func (s *Server) MarkNotificationRead(ctx echo.Context, rawNotificationID servers.NotificationId) error {
	actor, ok, err := requireActor(ctx, kernel.Farmer)
	if !ok {
		return err
	}

	notificationID, err := toKernelID(rawNotificationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(actor.ID(), notificationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.MarkRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, actionMarkRead, &actor, &notificationID, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteNotification handles DELETE /api/v1/notifications/{notificationId}.
func (s *Server) DeleteNotification(ctx echo.Context, rawNotificationID servers.NotificationId) error {
	actor, ok, err := requireActor(ctx, kernel.Farmer)
	if !ok {
		return err
	}

	notificationID, err := toKernelID(rawNotificationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteNotificationCommand(actor.ID(), notificationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.h.DeleteNotification.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, actionDeleteNotification, &actor, &notificationID, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetErrorLogs handles GET /api/v1/admin/error-logs.
func (s *Server) GetErrorLogs(ctx echo.Context, params servers.GetErrorLogsParams) error {
	actor, ok, err := requireActor(ctx, kernel.Admin)
	if !ok {
		return err
	}

	query, err := queries.NewGetErrorLogsQuery(limitOf(params.Limit))
	if err != nil {
		return badRequest(ctx, err)
	}

	entries, err := s.h.GetErrorLogs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, actionGetErrorLogs, &actor, nil, err)
	}

	response := make([]servers.ErrorLog, len(entries))
	for i, e := range entries {
		response[i] = servers.ErrorLog{
			Id:        e.ID.Bytes(),
			Action:    e.Action,
			Message:   e.Message,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		}
		if e.ActorID != nil {
			id := e.ActorID.Bytes()
			response[i].ActorId = &id
		}
		if e.EntityID != nil {
			id := e.EntityID.Bytes()
			response[i].EntityId = &id
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// formatMoney renders whole-cent amounts with two decimals and finer amounts exactly.
func formatMoney(d decimal.Decimal) string {
	if d.Equal(d.Round(2)) {
		return d.StringFixed(2)
	}
	return d.String()
}

func toKernelID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalKernelID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	kid, err := toKernelID(*id)
	if err != nil {
		return nil, err
	}
	return &kid, nil
}

func toCropDetails(body servers.CropDetails) (crop.Details, error) {
	variety, err := crop.ParseVariety(string(body.Variety))
	if err != nil {
		return crop.Details{}, err
	}
	quantity, err := decimal.NewFromString(body.Quantity)
	if err != nil {
		return crop.Details{}, err
	}
	price, err := decimal.NewFromString(body.PricePerUnit)
	if err != nil {
		return crop.Details{}, err
	}

	unit := crop.DefaultUnit
	if body.Unit != nil && strings.TrimSpace(*body.Unit) != "" {
		unit = *body.Unit
	}
	var description string
	if body.Description != nil {
		description = *body.Description
	}

	return crop.Details{
		Name:         body.Name,
		Variety:      variety,
		Quantity:     quantity,
		Unit:         unit,
		PricePerUnit: price,
		Description:  description,
	}, nil
}

func limitOf(limit *int) int {
	if limit == nil {
		return 0
	}
	return *limit
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
