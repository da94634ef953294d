package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 注文（/orders）
type OrderRepository interface {
	Create(ctx context.Context, req model.CreateOrderRequest) (model.Order, error)
	List(ctx context.Context, page int, limit int) (model.Page[model.Order], error)
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	Cancel(ctx context.Context, orderID string, reason string) (model.Order, error)
	Track(ctx context.Context, orderID string) (model.OrderTracking, error)
	RequestReturn(ctx context.Context, orderID string, lines []model.ReturnLine) error
}
