package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	"storefront/internal/session"

	"github.com/labstack/echo/v4"
)

// /auth のHTTP。トークンはセッション側に置くのでブラウザにはユーザー情報だけ返す。
type AuthHandler struct {
	base
}

// DIコンストラクタ
func NewAuthHandler(cfg PageConfig) *AuthHandler {
	return &AuthHandler{base: newBase(cfg)}
}

// /auth/login のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type tokenRequest struct {
	Token    string `json:"token"`
	Password string `json:"password,omitempty"`
}

type authResponse struct {
	User            *model.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	g := e.Group("/auth")

	g.POST("/login", withSession(h.login))
	g.POST("/register", withSession(h.register))
	g.POST("/logout", withSession(h.logout))
	g.POST("/refresh", withSession(h.refresh))
	g.POST("/forgot-password", withSession(h.forgotPassword))
	g.POST("/reset-password", withSession(h.resetPassword))
	g.POST("/verify-email", withSession(h.verifyEmail))
	g.POST("/resend-verification", withSession(h.resendVerification))

	g.GET("/me", withSession(h.me), requireAuth)
	g.PUT("/profile", withSession(h.updateProfile), requireAuth)
	g.POST("/change-password", withSession(h.changePassword), requireAuth)
}

func (h *AuthHandler) login(c echo.Context, s *session.Session) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	user, err := s.Account.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{User: user, IsAuthenticated: true})
}

func (h *AuthHandler) register(c echo.Context, s *session.Session) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	user, err := s.Account.Register(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, authResponse{User: user, IsAuthenticated: true})
}

func (h *AuthHandler) logout(c echo.Context, s *session.Session) error {
	s.Account.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) refresh(c echo.Context, s *session.Session) error {
	user, err := s.Account.Refresh(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{User: user, IsAuthenticated: true})
}

// アカウントページ
func (h *AuthHandler) me(c echo.Context, s *session.Session) error {
	user, err := s.Account.Me(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return h.render(c, s, http.StatusOK, i18n.NSHeader, authResponse{User: user, IsAuthenticated: true})
}

func (h *AuthHandler) updateProfile(c echo.Context, s *session.Session) error {
	var req model.User
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	user, err := s.Account.UpdateProfile(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, authResponse{User: user, IsAuthenticated: true})
}

func (h *AuthHandler) changePassword(c echo.Context, s *session.Session) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := s.Account.ChangePassword(c.Request().Context(), req.CurrentPassword, req.NewPassword); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) forgotPassword(c echo.Context, s *session.Session) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := s.Account.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

func (h *AuthHandler) resetPassword(c echo.Context, s *session.Session) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := s.Account.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) verifyEmail(c echo.Context, s *session.Session) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := s.Account.VerifyEmail(c.Request().Context(), req.Token); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) resendVerification(c echo.Context, s *session.Session) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := s.Account.ResendVerification(c.Request().Context(), req.Email); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}
