package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type orderAPI struct {
	c *Client
}

// DI
func NewOrderAPI(c *Client) repo.OrderRepository {
	return &orderAPI{c: c}
}

func (a *orderAPI) Create(ctx context.Context, req model.CreateOrderRequest) (model.Order, error) {
	return call[model.Order](ctx, a.c, http.MethodPost, "/orders", nil, req)
}

// page/limit は0以下なら 1/10
func (a *orderAPI) List(ctx context.Context, page int, limit int) (model.Page[model.Order], error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	return callPage[model.Order](ctx, a.c, "/orders", q)
}

func (a *orderAPI) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	return call[model.Order](ctx, a.c, http.MethodGet, "/orders/"+seg(orderID), nil, nil)
}

func (a *orderAPI) Cancel(ctx context.Context, orderID string, reason string) (model.Order, error) {
	body := struct {
		Reason string `json:"reason,omitempty"`
	}{Reason: reason}
	return call[model.Order](ctx, a.c, http.MethodPut, "/orders/"+seg(orderID)+"/cancel", nil, body)
}

func (a *orderAPI) Track(ctx context.Context, orderID string) (model.OrderTracking, error) {
	return call[model.OrderTracking](ctx, a.c, http.MethodGet, "/orders/"+seg(orderID)+"/tracking", nil, nil)
}

func (a *orderAPI) RequestReturn(ctx context.Context, orderID string, lines []model.ReturnLine) error {
	body := struct {
		Items []model.ReturnLine `json:"items"`
	}{Items: lines}
	return a.c.do(ctx, http.MethodPost, "/orders/"+seg(orderID)+"/return", nil, body, nil)
}
