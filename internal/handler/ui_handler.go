package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	"storefront/internal/session"

	"github.com/labstack/echo/v4"
)

// 言語切り替え・テーマ・メニュー・トースト
type UIHandler struct {
	base
}

// DI
func NewUIHandler(cfg PageConfig) *UIHandler {
	return &UIHandler{base: newBase(cfg)}
}

type languageRequest struct {
	Language string `json:"language"`
}

type themeRequest struct {
	Theme model.Theme `json:"theme"`
}

type notificationRequest struct {
	Type    model.NotificationType `json:"type"`
	Title   string                 `json:"title"`
	Message string                 `json:"message"`
	// ミリ秒。0なら自動では消えない
	DurationMS int `json:"duration"`
}

func (h *UIHandler) RegisterRoutes(e *echo.Echo) {
	e.PUT("/language", withSession(h.changeLanguage))

	g := e.Group("/ui")
	g.GET("", withSession(h.state))
	g.PUT("/theme", withSession(h.setTheme))
	g.POST("/menu/toggle", withSession(h.toggleMenu))
	g.POST("/search/toggle", withSession(h.toggleSearch))

	g.GET("/notifications", withSession(h.listNotifications))
	g.POST("/notifications", withSession(h.addNotification))
	g.DELETE("/notifications", withSession(h.clearNotifications))
	g.DELETE("/notifications/:id", withSession(h.removeNotification))
}

func (h *UIHandler) changeLanguage(c echo.Context, s *session.Session) error {
	var req languageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := s.I18n.ChangeLanguage(c.Request().Context(), req.Language); err != nil {
		if errors.Is(err, i18n.ErrUnsupportedLanguage) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported language"})
		}
		return writeError(c, err)
	}
	c.Response().Header().Set("Content-Language", s.I18n.Language())

	return h.render(c, s, http.StatusOK, i18n.NSCommon, nil)
}

func (h *UIHandler) state(c echo.Context, s *session.Session) error {
	return h.render(c, s, http.StatusOK, i18n.NSCommon, nil)
}

func (h *UIHandler) setTheme(c echo.Context, s *session.Session) error {
	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Theme != model.ThemeLight && req.Theme != model.ThemeDark {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid theme"})
	}

	s.UI.SetTheme(req.Theme)
	return h.render(c, s, http.StatusOK, i18n.NSCommon, nil)
}

func (h *UIHandler) toggleMenu(c echo.Context, s *session.Session) error {
	s.UI.ToggleMobileMenu()
	return h.render(c, s, http.StatusOK, i18n.NSCommon, nil)
}

func (h *UIHandler) toggleSearch(c echo.Context, s *session.Session) error {
	s.UI.ToggleSearch()
	return h.render(c, s, http.StatusOK, i18n.NSCommon, nil)
}

func (h *UIHandler) listNotifications(c echo.Context, s *session.Session) error {
	return c.JSON(http.StatusOK, s.UI.State().Notifications)
}

func (h *UIHandler) addNotification(c echo.Context, s *session.Session) error {
	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	switch req.Type {
	case model.NotificationSuccess, model.NotificationError, model.NotificationWarning, model.NotificationInfo:
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid type"})
	}
	if strings.TrimSpace(req.Title) == "" || req.DurationMS < 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	n := s.UI.AddNotification(model.Notification{
		Type:     req.Type,
		Title:    strings.TrimSpace(req.Title),
		Message:  req.Message,
		Duration: time.Duration(req.DurationMS) * time.Millisecond,
	})
	return c.JSON(http.StatusCreated, n)
}

func (h *UIHandler) removeNotification(c echo.Context, s *session.Session) error {
	s.UI.RemoveNotification(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func (h *UIHandler) clearNotifications(c echo.Context, s *session.Session) error {
	s.UI.ClearNotifications()
	return c.NoContent(http.StatusNoContent)
}
