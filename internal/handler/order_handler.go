package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	"storefront/internal/session"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkout, /orders のHTTP
type OrderHandler struct {
	base
}

// DI
func NewOrderHandler(cfg PageConfig) *OrderHandler {
	return &OrderHandler{base: newBase(cfg)}
}

type PlaceOrderRequest struct {
	ShippingAddress model.Address  `json:"shippingAddress"`
	BillingAddress  *model.Address `json:"billingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type ReturnRequest struct {
	Items []model.ReturnLine `json:"items"`
}

// 注文系は全部ログイン必須。GET /checkout だけは確認画面なのでログイン前でも見られる。
func (h *OrderHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	e.GET("/checkout", withSession(h.checkoutPage))
	e.POST("/checkout", withSession(h.placeOrder), requireAuth)

	g := e.Group("/orders", requireAuth)
	g.GET("", withSession(h.listOrders))
	g.GET("/:id", withSession(h.getOrder))
	g.POST("/:id/cancel", withSession(h.cancelOrder))
	g.GET("/:id/tracking", withSession(h.trackOrder))
	g.POST("/:id/return", withSession(h.requestReturn))
}

type checkoutPage struct {
	Summary        usecase.OrderSummary `json:"summary"`
	Subtotal       string               `json:"subtotalLabel"`
	Shipping       string               `json:"shippingLabel"`
	Tax            string               `json:"taxLabel"`
	Total          string               `json:"totalLabel"`
	PaymentMethods []string             `json:"paymentMethods"`
	RequiresLogin  bool                 `json:"requiresLogin"`
}

func (h *OrderHandler) checkoutPage(c echo.Context, s *session.Session) error {
	sum := s.Checkout.Summary()
	return h.render(c, s, http.StatusOK, i18n.NSCart, checkoutPage{
		Summary:        sum,
		Subtotal:       h.money(sum.Subtotal),
		Shipping:       h.money(sum.Shipping),
		Tax:            h.money(sum.Tax),
		Total:          h.money(sum.Total),
		PaymentMethods: usecase.PaymentMethods(),
		RequiresLogin:  !s.Auth.State().IsAuthenticated,
	})
}

func (h *OrderHandler) placeOrder(c echo.Context, s *session.Session) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := s.Checkout.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}
	notify(s, model.NotificationSuccess, i18n.NSCart, "orderPlaced")

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) listOrders(c echo.Context, s *session.Session) error {
	page, err := atoiDefault(c.QueryParam("page"), 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
	}
	limit, err := atoiDefault(c.QueryParam("limit"), 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
	}

	out, err := s.Checkout.ListOrders(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) getOrder(c echo.Context, s *session.Session) error {
	out, err := s.Checkout.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) cancelOrder(c echo.Context, s *session.Session) error {
	var req CancelOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := s.Checkout.CancelOrder(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) trackOrder(c echo.Context, s *session.Session) error {
	out, err := s.Checkout.TrackOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) requestReturn(c echo.Context, s *session.Session) error {
	var req ReturnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := s.Checkout.RequestReturn(c.Request().Context(), c.Param("id"), req.Items); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// 空なら def
func atoiDefault(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
