package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	"storefront/internal/session"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart のHTTP
type CartHandler struct {
	base
}

// DI
func NewCartHandler(cfg PageConfig) *CartHandler {
	return &CartHandler{base: newBase(cfg)}
}

type AddCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CouponRequest struct {
	Code string `json:"code"`
}

// /cart, /cart/{id} を登録。クーポンと送料見積もりはサーバー側のカートなのでログイン必須。
func (h *CartHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	g := e.Group("/cart")

	g.GET("", withSession(h.getCart))
	g.POST("", withSession(h.addToCart))
	g.DELETE("", withSession(h.clearCart))
	g.PATCH("/:id", withSession(h.patchItem))
	g.DELETE("/:id", withSession(h.deleteItem))

	g.POST("/coupon", withSession(h.applyCoupon), requireAuth)
	g.DELETE("/coupon", withSession(h.removeCoupon), requireAuth)
	g.POST("/shipping", withSession(h.quoteShipping), requireAuth)
}

type cartPage struct {
	Cart     model.CartSnapshot   `json:"cart"`
	Summary  usecase.OrderSummary `json:"summary"`
	Subtotal string               `json:"subtotalLabel"`
	Shipping string               `json:"shippingLabel"`
	Tax      string               `json:"taxLabel"`
	Total    string               `json:"totalLabel"`
	IsEmpty  bool                 `json:"isEmpty"`
	Wishlist int                  `json:"wishlistCount"`
}

func (h *CartHandler) page(s *session.Session) cartPage {
	sum := s.Checkout.Summary()
	return cartPage{
		Cart:     s.Carts.GetCart(),
		Summary:  sum,
		Subtotal: h.money(sum.Subtotal),
		Shipping: h.money(sum.Shipping),
		Tax:      h.money(sum.Tax),
		Total:    h.money(sum.Total),
		IsEmpty:  sum.TotalItems == 0,
		Wishlist: s.Wishlist.State().TotalItems,
	}
}

func (h *CartHandler) getCart(c echo.Context, s *session.Session) error {
	return h.render(c, s, http.StatusOK, i18n.NSCart, h.page(s))
}

func (h *CartHandler) addToCart(c echo.Context, s *session.Session) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if _, err := s.Carts.AddToCart(c.Request().Context(), req.ProductID, req.Quantity); err != nil {
		notify(s, model.NotificationError, i18n.NSCommon, "error")
		return writeError(c, err)
	}
	notify(s, model.NotificationSuccess, i18n.NSCommon, "added")

	return h.render(c, s, http.StatusOK, i18n.NSCart, h.page(s))
}

func (h *CartHandler) patchItem(c echo.Context, s *session.Session) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if _, err := s.Carts.UpdateCartItem(c.Request().Context(), c.Param("id"), req.Quantity); err != nil {
		return writeError(c, err)
	}

	return h.render(c, s, http.StatusOK, i18n.NSCart, h.page(s))
}

func (h *CartHandler) deleteItem(c echo.Context, s *session.Session) error {
	if _, err := s.Carts.DeleteCartItem(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	notify(s, model.NotificationInfo, i18n.NSCommon, "removed")

	return h.render(c, s, http.StatusOK, i18n.NSCart, h.page(s))
}

func (h *CartHandler) clearCart(c echo.Context, s *session.Session) error {
	s.Carts.ClearCart(c.Request().Context())
	return h.render(c, s, http.StatusOK, i18n.NSCart, h.page(s))
}

func (h *CartHandler) applyCoupon(c echo.Context, s *session.Session) error {
	var req CouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := s.Carts.ApplyCoupon(c.Request().Context(), req.Code)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeCoupon(c echo.Context, s *session.Session) error {
	out, err := s.Carts.RemoveCoupon(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) quoteShipping(c echo.Context, s *session.Session) error {
	var req model.Address
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := s.Carts.QuoteShipping(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
