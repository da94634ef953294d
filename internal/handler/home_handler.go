package handler

import (
	"net/http"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	"storefront/internal/session"

	"github.com/labstack/echo/v4"
)

// トーストの表示時間
const notificationDuration = 3 * time.Second

// トップページと not found
type HomeHandler struct {
	base
}

// DI
func NewHomeHandler(cfg PageConfig) *HomeHandler {
	return &HomeHandler{base: newBase(cfg)}
}

func (h *HomeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", withSession(h.home))
	e.RouteNotFound("/*", withSession(h.notFound))
}

type homePage struct {
	Featured   []ProductCard    `json:"featured"`
	Categories []model.Category `json:"categories"`
	Error      string           `json:"error,omitempty"`
}

// 取得に失敗してもページは出す（エラー文言だけ載せる）
func (h *HomeHandler) home(c echo.Context, s *session.Session) error {
	ctx := c.Request().Context()
	_ = s.Catalog.FetchFeatured(ctx, h.cfg.FeaturedLimit)
	if len(s.Catalog.State().Categories) == 0 {
		_ = s.Catalog.FetchCategories(ctx)
	}

	st := s.Catalog.State()
	return h.render(c, s, http.StatusOK, i18n.NSHome, homePage{
		Featured:   h.cards(s, st.FeaturedProducts),
		Categories: st.Categories,
		Error:      st.Error,
	})
}

type notFoundPage struct {
	Path string `json:"path"`
}

func (h *HomeHandler) notFound(c echo.Context, s *session.Session) error {
	return h.render(c, s, http.StatusNotFound, i18n.NSCommon, notFoundPage{Path: c.Request().URL.Path})
}
