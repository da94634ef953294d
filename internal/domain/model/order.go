package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// 発送前ならキャンセルできる
func (s OrderStatus) Cancellable() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing:
		return true
	default:
		return false
	}
}

type Order struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId"`
	Items           []RemoteCartItem `json:"items"`
	ShippingAddress Address          `json:"shippingAddress"`
	BillingAddress  Address          `json:"billingAddress"`
	PaymentMethod   string           `json:"paymentMethod"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	Tax             decimal.Decimal  `json:"tax"`
	Shipping        decimal.Decimal  `json:"shipping"`
	Total           decimal.Decimal  `json:"total"`
	Status          OrderStatus      `json:"status"`
	TrackingNumber  string           `json:"trackingNumber,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type OrderLine struct {
	ProductID string            `json:"productId"`
	Quantity  int               `json:"quantity"`
	Variants  map[string]string `json:"variants,omitempty"`
}

// POST /orders
type CreateOrderRequest struct {
	Items           []OrderLine `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	BillingAddress  Address     `json:"billingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
}

type TrackingEvent struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// GET /orders/:id/tracking
type OrderTracking struct {
	Order    Order           `json:"order"`
	Tracking []TrackingEvent `json:"tracking"`
}

type ReturnLine struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}
