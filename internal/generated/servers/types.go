// Package servers provides primitives to interact with the openapi HTTP API.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	ActorHeaderScopes = "actorHeader.Scopes"
)

// Defines values for CropDetailsVariety.
const (
	Barley     CropDetailsVariety = "Barley"
	Cotton     CropDetailsVariety = "Cotton"
	Fruits     CropDetailsVariety = "Fruits"
	Maize      CropDetailsVariety = "Maize"
	Other      CropDetailsVariety = "Other"
	Pulses     CropDetailsVariety = "Pulses"
	Rice       CropDetailsVariety = "Rice"
	Sugarcane  CropDetailsVariety = "Sugarcane"
	Vegetables CropDetailsVariety = "Vegetables"
	Wheat      CropDetailsVariety = "Wheat"
)

// Defines values for NotificationType.
const (
	NotificationTypeCropDeleted    NotificationType = "CropDeleted"
	NotificationTypeOrder          NotificationType = "Order"
	NotificationTypeOrderCancelled NotificationType = "OrderCancelled"
)

// Defines values for OrderStatus.
const (
	Accepted  OrderStatus = "Accepted"
	Cancelled OrderStatus = "Cancelled"
	Pending   OrderStatus = "Pending"
	Rejected  OrderStatus = "Rejected"
)

// BuyerOrder defines model for BuyerOrder.
type BuyerOrder struct {
	CropId     openapi_types.UUID `json:"cropId"`
	CropName   string             `json:"cropName"`
	FarmerName string             `json:"farmerName"`
	Id         openapi_types.UUID `json:"id"`
	ImageUrls  []string           `json:"imageUrls"`
	OrderDate  time.Time          `json:"orderDate"`
	Quantity   Decimal            `json:"quantity"`
	Status     OrderStatus        `json:"status"`
	TotalPrice Decimal            `json:"totalPrice"`
	Unit       string             `json:"unit"`
}

// CreatedId defines model for CreatedId.
type CreatedId struct {
	Id openapi_types.UUID `json:"id"`
}

// CropDetails defines model for CropDetails.
type CropDetails struct {
	Description  *string            `json:"description,omitempty"`
	Name         string             `json:"name"`
	PricePerUnit Decimal            `json:"pricePerUnit"`
	Quantity     Decimal            `json:"quantity"`
	Unit         *string            `json:"unit,omitempty"`
	Variety      CropDetailsVariety `json:"variety"`
}

// CropDetailsVariety defines model for CropDetails.Variety.
type CropDetailsVariety string

// Decimal defines model for Decimal.
type Decimal = string

// Error defines model for Error.
type Error struct {
	Code int `json:"code"`

	// Count Active orders blocking a crop deletion.
	Count *int `json:"count,omitempty"`

	// Message English and Urdu text separated by " / ".
	Message string `json:"message"`
}

// ErrorLog defines model for ErrorLog.
type ErrorLog struct {
	Action    string              `json:"action"`
	ActorId   *openapi_types.UUID `json:"actorId,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	Detail    string              `json:"detail"`

	// EntityId Order, crop or notification the failed request targeted.
	EntityId *openapi_types.UUID `json:"entityId,omitempty"`
	Id       openapi_types.UUID  `json:"id"`
	Message  string              `json:"message"`
}

// NewCrop defines model for NewCrop.
type NewCrop struct {
	Description  *string             `json:"description,omitempty"`
	ImageUrls    *[]string           `json:"imageUrls,omitempty"`
	Name         string              `json:"name"`
	PricePerUnit Decimal             `json:"pricePerUnit"`
	Quantity     Decimal             `json:"quantity"`
	ReportId     *openapi_types.UUID `json:"reportId,omitempty"`
	Unit         *string             `json:"unit,omitempty"`
	Variety      CropDetailsVariety  `json:"variety"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CropId   openapi_types.UUID `json:"cropId"`
	Quantity Decimal            `json:"quantity"`
}

// Notification defines model for Notification.
type Notification struct {
	BuyerName  string              `json:"buyerName"`
	CreatedAt  time.Time           `json:"createdAt"`
	CropName   string              `json:"cropName"`
	Id         openapi_types.UUID  `json:"id"`
	IsRead     bool                `json:"isRead"`
	Message    string              `json:"message"`
	Order      *NotificationOrder  `json:"order,omitempty"`
	OrderId    *openapi_types.UUID `json:"orderId,omitempty"`
	Quantity   *Decimal            `json:"quantity,omitempty"`
	TotalPrice *Decimal            `json:"totalPrice,omitempty"`
	Type       NotificationType    `json:"type"`
}

// NotificationType defines model for Notification.Type.
type NotificationType string

// NotificationOrder defines model for NotificationOrder.
type NotificationOrder struct {
	BuyerName string      `json:"buyerName"`
	CropName  string      `json:"cropName"`
	ImageUrls []string    `json:"imageUrls"`
	OrderDate time.Time   `json:"orderDate"`
	Status    OrderStatus `json:"status"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// UnreadCount defines model for UnreadCount.
type UnreadCount struct {
	Count int64 `json:"count"`
}

// CropId defines model for CropId.
type CropId = openapi_types.UUID

// Limit defines model for Limit.
type Limit = int

// NotificationId defines model for NotificationId.
type NotificationId = openapi_types.UUID

// NotificationIdQuery defines model for NotificationIdQuery.
type NotificationIdQuery = openapi_types.UUID

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// GetErrorLogsParams defines parameters for GetErrorLogs.
type GetErrorLogsParams struct {
	Limit *Limit `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetBuyerOrdersParams defines parameters for GetBuyerOrders.
type GetBuyerOrdersParams struct {
	Limit *Limit `form:"limit,omitempty" json:"limit,omitempty"`
}

// AcceptOrderParams defines parameters for AcceptOrder.
type AcceptOrderParams struct {
	// NotificationId Notification that triggered the action; it is marked read.
	NotificationId *NotificationIdQuery `form:"notificationId,omitempty" json:"notificationId,omitempty"`
}

// CancelOrderParams defines parameters for CancelOrder.
type CancelOrderParams struct {
	// NotificationId Notification that triggered the action; it is marked read.
	NotificationId *NotificationIdQuery `form:"notificationId,omitempty" json:"notificationId,omitempty"`
}

// RejectOrderParams defines parameters for RejectOrder.
type RejectOrderParams struct {
	// NotificationId Notification that triggered the action; it is marked read.
	NotificationId *NotificationIdQuery `form:"notificationId,omitempty" json:"notificationId,omitempty"`
}

// CreateCropJSONRequestBody defines body for CreateCrop for application/json ContentType.
type CreateCropJSONRequestBody = NewCrop

// UpdateCropJSONRequestBody defines body for UpdateCrop for application/json ContentType.
type UpdateCropJSONRequestBody = CropDetails

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder
