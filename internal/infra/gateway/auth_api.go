package gateway

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type authAPI struct {
	c *Client
}

// DI
func NewAuthAPI(c *Client) repo.AuthRepository {
	return &authAPI{c: c}
}

func (a *authAPI) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	return call[model.AuthResponse](ctx, a.c, http.MethodPost, "/auth/register", nil, req)
}

func (a *authAPI) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	return call[model.AuthResponse](ctx, a.c, http.MethodPost, "/auth/login", nil, req)
}

func (a *authAPI) Logout(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (a *authAPI) Refresh(ctx context.Context, refreshToken string) (model.AuthResponse, error) {
	body := struct {
		RefreshToken string `json:"refreshToken"`
	}{RefreshToken: refreshToken}
	return call[model.AuthResponse](ctx, a.c, http.MethodPost, "/auth/refresh", nil, body)
}

func (a *authAPI) Profile(ctx context.Context) (model.User, error) {
	return call[model.User](ctx, a.c, http.MethodGet, "/auth/profile", nil, nil)
}

func (a *authAPI) UpdateProfile(ctx context.Context, u model.User) (model.User, error) {
	return call[model.User](ctx, a.c, http.MethodPut, "/auth/profile", nil, u)
}

func (a *authAPI) ChangePassword(ctx context.Context, current string, next string) error {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{CurrentPassword: current, NewPassword: next}
	return a.c.do(ctx, http.MethodPut, "/auth/change-password", nil, body, nil)
}

func (a *authAPI) ForgotPassword(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return a.c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, body, nil)
}

func (a *authAPI) ResetPassword(ctx context.Context, token string, newPassword string) error {
	body := struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}{Token: token, NewPassword: newPassword}
	return a.c.do(ctx, http.MethodPost, "/auth/reset-password", nil, body, nil)
}

func (a *authAPI) VerifyEmail(ctx context.Context, token string) error {
	body := struct {
		Token string `json:"token"`
	}{Token: token}
	return a.c.do(ctx, http.MethodPost, "/auth/verify-email", nil, body, nil)
}

func (a *authAPI) ResendVerification(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return a.c.do(ctx, http.MethodPost, "/auth/resend-verification", nil, body, nil)
}
