package servers

import (
	"fmt"
	"net/http"

	"harvesthub/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List recorded failures, newest first (admin)
	// (GET /api/v1/admin/error-logs)
	GetErrorLogs(ctx echo.Context, params GetErrorLogsParams) error
	// List a new crop (farmer)
	// (POST /api/v1/crops)
	CreateCrop(ctx echo.Context) error
	// Delete a crop and everything that depends on it (owning farmer or admin)
	// (DELETE /api/v1/crops/{cropId})
	DeleteCrop(ctx echo.Context, cropId CropId) error
	// Edit a crop listing (owning farmer or admin)
	// (PUT /api/v1/crops/{cropId})
	UpdateCrop(ctx echo.Context, cropId CropId) error
	// List the calling farmer's notifications, newest first
	// (GET /api/v1/notifications)
	ListNotifications(ctx echo.Context) error
	// Count the calling farmer's unread notifications
	// (GET /api/v1/notifications/unread-count)
	CountUnreadNotifications(ctx echo.Context) error
	// Delete one notification (farmer)
	// (DELETE /api/v1/notifications/{notificationId})
	DeleteNotification(ctx echo.Context, notificationId NotificationId) error
	// Mark a notification read (farmer, idempotent)
	// (POST /api/v1/notifications/{notificationId}/read)
	MarkNotificationRead(ctx echo.Context, notificationId NotificationId) error
	// List the calling buyer's orders, newest first
	// (GET /api/v1/orders)
	GetBuyerOrders(ctx echo.Context, params GetBuyerOrdersParams) error
	// Place an order for a crop (buyer)
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// Delete an order together with its notifications (buyer)
	// (DELETE /api/v1/orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId OrderId) error
	// Accept a pending order (farmer)
	// (POST /api/v1/orders/{orderId}/accept)
	AcceptOrder(ctx echo.Context, orderId OrderId, params AcceptOrderParams) error
	// Cancel an order (buyer or farmer)
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId OrderId, params CancelOrderParams) error
	// Reject a pending order (farmer)
	// (POST /api/v1/orders/{orderId}/reject)
	RejectOrder(ctx echo.Context, orderId OrderId, params RejectOrderParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetErrorLogs converts echo context to params.
func (w *ServerInterfaceWrapper) GetErrorLogs(ctx echo.Context) error {
	var err error

	ctx.Set(ActorHeaderScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetErrorLogsParams
	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetErrorLogs(ctx, params)
	return err
}

// CreateCrop converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCrop(ctx echo.Context) error {
	var err error

	ctx.Set(ActorHeaderScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateCrop(ctx)
	return err
}

// DeleteCrop converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteCrop(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "cropId" -------------
	var cropId CropId

	err = bindPathUUID(ctx, "cropId", &cropId)
	if err != nil {
		return err
	}

	ctx.Set(ActorHeaderScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteCrop(ctx, cropId)
	return err
}

// UpdateCrop converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCrop(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "cropId" -------------
	var cropId CropId

	err = bindPathUUID(ctx, "cropId", &cropId)
	if err != nil {
		return err
	}

	ctx.Set(ActorHeaderScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateCrop(ctx, cropId)
	return err
}

// ListNotifications converts echo context to params.
func (w *ServerInterfaceWrapper) ListNotifications(ctx echo.Context) error {
	var err error

	ctx.Set(ActorHeaderScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListNotifications(ctx)
	return err
}

// CountUnreadNotifications converts echo context to params.
func (w *ServerInterfaceWrapper) CountUnreadNotifications(ctx echo.Context) error {
	var err error

	ctx.Set(ActorHeaderScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CountUnreadNotifications(ctx)
	return err
}

// DeleteNotification converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteNotification(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "notificationId" -------------
	var notificationId NotificationId

	err = bindPathUUID(ctx, "notificationId", &notificationId)
	if err != nil {
		return err
	}

	ctx.Set(ActorHeaderScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteNotification(ctx, notificationId)
	return err
}

// MarkNotificationRead converts echo context to params.
func (w *ServerInterfaceWrapper) MarkNotificationRead(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "notificationId" -------------
	var notificationId NotificationId

	err = bindPathUUID(ctx, "notificationId", &notificationId)
	if err != nil {
		return err
	}

	ctx.Set(ActorHeaderScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkNotificationRead(ctx, notificationId)
	return err
}

// GetBuyerOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetBuyerOrders(ctx echo.Context) error {
	var err error

	ctx.Set(ActorHeaderScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetBuyerOrdersParams
	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetBuyerOrders(ctx, params)
	return err
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	var err error

	ctx.Set(ActorHeaderScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PlaceOrder(ctx)
	return err
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = bindPathUUID(ctx, "orderId", &orderId)
	if err != nil {
		return err
	}

	ctx.Set(ActorHeaderScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOrder(ctx, orderId)
	return err
}

// AcceptOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = bindPathUUID(ctx, "orderId", &orderId)
	if err != nil {
		return err
	}

	ctx.Set(ActorHeaderScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params AcceptOrderParams

	err = bindNotificationIDQuery(ctx, &params.NotificationId)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AcceptOrder(ctx, orderId, params)
	return err
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = bindPathUUID(ctx, "orderId", &orderId)
	if err != nil {
		return err
	}

	ctx.Set(ActorHeaderScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params CancelOrderParams

	err = bindNotificationIDQuery(ctx, &params.NotificationId)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelOrder(ctx, orderId, params)
	return err
}

// RejectOrder converts echo context to params.
func (w *ServerInterfaceWrapper) RejectOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = bindPathUUID(ctx, "orderId", &orderId)
	if err != nil {
		return err
	}

	ctx.Set(ActorHeaderScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params RejectOrderParams

	err = bindNotificationIDQuery(ctx, &params.NotificationId)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RejectOrder(ctx, orderId, params)
	return err
}

func bindPathUUID(ctx echo.Context, name string, dest *openapi_types.UUID) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func bindNotificationIDQuery(ctx echo.Context, dest **NotificationIdQuery) error {
	err := runtime.BindQueryParameter("form", true, false, "notificationId", ctx.QueryParams(), dest)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter notificationId: %s", err))
	}
	return nil
}

// EchoRouter is an interface implemented by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/admin/error-logs", wrapper.GetErrorLogs)
	router.POST(baseURL+"/api/v1/crops", wrapper.CreateCrop)
	router.DELETE(baseURL+"/api/v1/crops/:cropId", wrapper.DeleteCrop)
	router.PUT(baseURL+"/api/v1/crops/:cropId", wrapper.UpdateCrop)
	router.GET(baseURL+"/api/v1/notifications", wrapper.ListNotifications)
	router.GET(baseURL+"/api/v1/notifications/unread-count", wrapper.CountUnreadNotifications)
	router.DELETE(baseURL+"/api/v1/notifications/:notificationId", wrapper.DeleteNotification)
	router.POST(baseURL+"/api/v1/notifications/:notificationId/read", wrapper.MarkNotificationRead)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetBuyerOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.DELETE(baseURL+"/api/v1/orders/:orderId", wrapper.DeleteOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/accept", wrapper.AcceptOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/reject", wrapper.RejectOrder)
}

// GetSwagger returns the OpenAPI document embedded in package api.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
