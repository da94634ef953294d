package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	"storefront/internal/session"

	"github.com/labstack/echo/v4"
)

// /wishlist のHTTP
type WishlistHandler struct {
	base
}

// DI
func NewWishlistHandler(cfg PageConfig) *WishlistHandler {
	return &WishlistHandler{base: newBase(cfg)}
}

type WishlistRequest struct {
	ProductID string `json:"productId"`
}

func (h *WishlistHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	g := e.Group("/wishlist")

	g.GET("", withSession(h.list))
	g.POST("", withSession(h.add))
	g.DELETE("", withSession(h.clear))
	g.DELETE("/:id", withSession(h.remove))
	g.POST("/:id/toggle", withSession(h.toggle))
	g.POST("/:id/move-to-cart", withSession(h.moveToCart))

	g.POST("/sync", withSession(h.sync), requireAuth)
}

type wishlistEntry struct {
	model.WishlistItem
	PriceLabel string `json:"priceLabel"`
	InCart     bool   `json:"inCart"`
}

type wishlistPage struct {
	Items      []wishlistEntry `json:"items"`
	TotalItems int             `json:"totalItems"`
	IsEmpty    bool            `json:"isEmpty"`
}

func (h *WishlistHandler) page(s *session.Session) wishlistPage {
	st := s.Wishes.GetWishlist()
	items := make([]wishlistEntry, 0, len(st.Items))
	for _, it := range st.Items {
		_, inCart := s.Cart.Item(it.ID)
		items = append(items, wishlistEntry{
			WishlistItem: it,
			PriceLabel:   h.money(it.Price),
			InCart:       inCart,
		})
	}
	return wishlistPage{Items: items, TotalItems: st.TotalItems, IsEmpty: len(items) == 0}
}

func (h *WishlistHandler) list(c echo.Context, s *session.Session) error {
	return h.render(c, s, http.StatusOK, i18n.NSCart, h.page(s))
}

func (h *WishlistHandler) add(c echo.Context, s *session.Session) error {
	var req WishlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if _, err := s.Wishes.Add(c.Request().Context(), req.ProductID); err != nil {
		return writeError(c, err)
	}
	notify(s, model.NotificationSuccess, i18n.NSCommon, "wishAdded")

	return h.render(c, s, http.StatusOK, i18n.NSCart, h.page(s))
}

func (h *WishlistHandler) toggle(c echo.Context, s *session.Session) error {
	_, added, err := s.Wishes.Toggle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if added {
		notify(s, model.NotificationSuccess, i18n.NSCommon, "wishAdded")
	} else {
		notify(s, model.NotificationInfo, i18n.NSCommon, "wishRemoved")
	}

	return h.render(c, s, http.StatusOK, i18n.NSCart, h.page(s))
}

func (h *WishlistHandler) remove(c echo.Context, s *session.Session) error {
	if _, err := s.Wishes.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	notify(s, model.NotificationInfo, i18n.NSCommon, "wishRemoved")

	return h.render(c, s, http.StatusOK, i18n.NSCart, h.page(s))
}

func (h *WishlistHandler) clear(c echo.Context, s *session.Session) error {
	s.Wishes.Clear(c.Request().Context())
	return h.render(c, s, http.StatusOK, i18n.NSCart, h.page(s))
}

func (h *WishlistHandler) moveToCart(c echo.Context, s *session.Session) error {
	if _, _, err := s.Wishes.MoveToCart(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	notify(s, model.NotificationSuccess, i18n.NSCommon, "added")

	return h.render(c, s, http.StatusOK, i18n.NSCart, h.page(s))
}

// ローカルだけにある項目をサーバーへ送る
func (h *WishlistHandler) sync(c echo.Context, s *session.Session) error {
	out, err := s.Wishes.Sync(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
