package handler_test

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippingAddress() map[string]any {
	return map[string]any{
		"firstName": "Aiko",
		"lastName":  "Tan",
		"street":    "1 Jalan Ampang",
		"city":      "Kuala Lumpur",
		"state":     "WP",
		"zipCode":   "50450",
		"country":   "MY",
	}
}

func Test_Checkout_PlaceOrder(t *testing.T) {
	c := NewTestClient(t)
	c.backend.POST("/orders", func(ec echo.Context) error {
		return ec.JSON(http.StatusCreated, model.Envelope[model.Order]{
			Success: true,
			Data: model.Order{
				ID:        "ord-1",
				Status:    model.OrderStatusPending,
				Total:     decimal.RequireFromString("35.91"),
				CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			},
		})
	})

	c.Do(http.MethodPost, "/cart", map[string]any{"productId": "prod-7", "quantity": 2})

	//未ログインでも確認画面は見られる
	rec := c.Do(http.MethodGet, "/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	type checkout struct {
		Total          string   `json:"totalLabel"`
		PaymentMethods []string `json:"paymentMethods"`
		RequiresLogin  bool     `json:"requiresLogin"`
	}
	cp := mustDecode[Page[checkout]](t, rec)
	assert.Equal(t, "$35.91", cp.Data.Total)
	assert.Equal(t, []string{"credit_card", "paypal", "bank_transfer"}, cp.Data.PaymentMethods)
	assert.True(t, cp.Data.RequiresLogin)

	rec = c.Do(http.MethodPost, "/checkout", map[string]any{"shippingAddress": shippingAddress(), "paymentMethod": "credit_card"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c.Login()

	rec = c.Do(http.MethodPost, "/checkout", map[string]any{"shippingAddress": shippingAddress(), "paymentMethod": "paypal"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		Order   model.Order `json:"order"`
		Summary struct {
			TotalItems int `json:"totalItems"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "ord-1", out.Order.ID)
	assert.Equal(t, 2, out.Summary.TotalItems)

	reqs := c.Requests("/orders")
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer access-1", reqs[0].Header.Get("Authorization"))
	var sent model.CreateOrderRequest
	require.NoError(t, json.Unmarshal(reqs[0].Body, &sent))
	assert.Equal(t, []model.OrderLine{{ProductID: "prod-7", Quantity: 2}}, sent.Items)
	assert.Equal(t, "paypal", sent.PaymentMethod)
	// 請求先は配送先と同じ
	assert.Equal(t, "1 Jalan Ampang", sent.BillingAddress.Street)
	assert.Equal(t, model.AddressBilling, sent.BillingAddress.Type)

	// 成功したらカートは空
	rec = c.Do(http.MethodGet, "/cart", nil)
	p := mustDecode[Page[CartPage]](t, rec)
	assert.True(t, p.Data.IsEmpty)
	assert.Equal(t, "Your order has been placed", p.Chrome.Notifications[len(p.Chrome.Notifications)-1].Title)
}

func Test_Checkout_Validation(t *testing.T) {
	c := NewTestClient(t)
	c.Login()

	rec := c.Do(http.MethodPost, "/checkout", map[string]any{"shippingAddress": shippingAddress(), "paymentMethod": "credit_card"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "cart empty", mustDecode[ErrorResponse](t, rec).Error)

	c.Do(http.MethodPost, "/cart", map[string]any{"productId": "prod-1"})

	addr := shippingAddress()
	delete(addr, "city")
	rec = c.Do(http.MethodPost, "/checkout", map[string]any{"shippingAddress": addr, "paymentMethod": "credit_card"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid shipping address: city", mustDecode[ErrorResponse](t, rec).Error)

	rec = c.Do(http.MethodPost, "/checkout", map[string]any{"shippingAddress": shippingAddress(), "paymentMethod": "cash"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// バックエンドへは1回も行かない
	assert.Empty(t, c.Requests("/orders"))

	rec = c.Do(http.MethodGet, "/cart", nil)
	assert.Equal(t, 1, mustDecode[Page[CartPage]](t, rec).Data.Cart.TotalItems)
}

func Test_Orders_List_Cancel(t *testing.T) {
	c := NewTestClient(t)
	c.backend.GET("/orders", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, model.Page[model.Order]{
			Data:       []model.Order{{ID: "ord-1", Status: model.OrderStatusShipped}},
			Pagination: model.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
		})
	})
	c.backend.GET("/orders/:id", func(ec echo.Context) error {
		status := model.OrderStatusPending
		if ec.Param("id") == "ord-1" {
			status = model.OrderStatusShipped
		}
		return ec.JSON(http.StatusOK, model.Envelope[model.Order]{Data: model.Order{ID: ec.Param("id"), Status: status}})
	})
	c.backend.PUT("/orders/:id/cancel", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, model.Envelope[model.Order]{Data: model.Order{ID: ec.Param("id"), Status: model.OrderStatusCancelled}})
	})

	rec := c.Do(http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c.Login()

	rec = c.Do(http.MethodGet, "/orders?page=1&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	list := mustDecode[model.Page[model.Order]](t, rec)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "ord-1", list.Data[0].ID)

	rec = c.Do(http.MethodGet, "/orders?page=x", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// 発送済みは送る前に弾く
	rec = c.Do(http.MethodPost, "/orders/ord-1/cancel", map[string]string{"reason": "late"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, c.Requests("/orders/ord-1/cancel"))

	rec = c.Do(http.MethodPost, "/orders/ord-2/cancel", map[string]string{"reason": " changed my mind "})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.OrderStatusCancelled, mustDecode[model.Order](t, rec).Status)
	reqs := c.Requests("/orders/ord-2/cancel")
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"reason":"changed my mind"}`, string(reqs[0].Body))
}

func Test_Orders_UnauthorizedSignsOut(t *testing.T) {
	c := NewTestClient(t)
	var hits atomic.Int32
	c.backend.GET("/orders", func(ec echo.Context) error {
		hits.Add(1)
		return ec.JSON(http.StatusUnauthorized, map[string]string{"message": "token expired"})
	})
	c.Login()

	rec := c.Do(http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// セッションはログアウト済みなので backend へは行かない
	rec = c.Do(http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, int32(1), hits.Load())

	rec = c.Do(http.MethodGet, "/", nil)
	p := mustDecode[Page[homeData]](t, rec)
	assert.False(t, p.Chrome.IsAuthenticated)
	assert.Empty(t, p.Chrome.UserName)
}
