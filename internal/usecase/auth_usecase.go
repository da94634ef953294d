package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/infra/gateway"
	repo "storefront/internal/repository"
	logx "storefront/pkg/logger"
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, req model.RegisterRequest) error
	ValidateLogin(ctx context.Context, email string, password string) error
	ValidateEmail(ctx context.Context, email string) error
	ValidatePassword(ctx context.Context, password string) error
	ValidateToken(ctx context.Context, token string) error
}

// AuthStore はセッションのログイン状態（store.Auth）
type AuthStore interface {
	Login(ctx context.Context, email string, password string) error
	Register(ctx context.Context, req model.RegisterRequest) error
	Logout(ctx context.Context)
	RefreshSession(ctx context.Context) error
	LoadProfile(ctx context.Context) error
	SetUser(ctx context.Context, u *model.User)
	CurrentUser() *model.User
	LastError() string
}

type AuthUsecase struct {
	auth AuthStore
	api  repo.AuthRepository
	v    AuthValidator
}

// DI
func NewAuthUsecase(auth AuthStore, api repo.AuthRepository, v AuthValidator) *AuthUsecase {
	return &AuthUsecase{auth: auth, api: api, v: v}
}

// 認証系の失敗。401/400は状態に残った文言をそのまま返す。
func (u *AuthUsecase) authFailed(err error) error {
	if ae, ok := gateway.AsAPIError(err); ok {
		switch ae.Kind {
		case gateway.KindUnauthorized, gateway.KindClient:
			msg := u.auth.LastError()
			if msg == "" {
				msg = ae.Message
			}
			return NewHTTPError(http.StatusUnauthorized, msg)
		}
	}
	return fromRemote(err)
}

// POST /auth/login
func (u *AuthUsecase) Login(ctx context.Context, email string, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if err := u.v.ValidateLogin(ctx, email, password); err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := u.auth.Login(ctx, email, password); err != nil {
		return nil, u.authFailed(err)
	}
	return u.auth.CurrentUser(), nil
}

// POST /auth/register
func (u *AuthUsecase) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if err := u.v.ValidateRegister(ctx, req); err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := u.auth.Register(ctx, req); err != nil {
		ae, ok := gateway.AsAPIError(err)
		if ok && ae.Kind == gateway.KindClient {
			//email重複など
			return nil, NewHTTPError(ae.Status, u.auth.LastError())
		}
		return nil, fromRemote(err)
	}
	return u.auth.CurrentUser(), nil
}

// POST /auth/logout（サーバーが落ちていてもローカルはログアウト）
func (u *AuthUsecase) Logout(ctx context.Context) {
	u.auth.Logout(ctx)
}

// POST /auth/refresh
func (u *AuthUsecase) Refresh(ctx context.Context) (*model.User, error) {
	if err := u.auth.RefreshSession(ctx); err != nil {
		logx.Info().Err(err).Msg("refresh failed")
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return u.auth.CurrentUser(), nil
}

// GET /auth/me はサーバーから取り直す
func (u *AuthUsecase) Me(ctx context.Context) (*model.User, error) {
	if err := u.auth.LoadProfile(ctx); err != nil {
		return nil, fromRemote(err)
	}
	user := u.auth.CurrentUser()
	if user == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return user, nil
}

// PUT /auth/profile
func (u *AuthUsecase) UpdateProfile(ctx context.Context, in model.User) (*model.User, error) {
	current := u.auth.CurrentUser()
	if current == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.FirstName == "" || in.LastName == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	//IDとメールは変えさせない
	in.ID = current.ID
	in.Email = current.Email

	out, err := u.api.UpdateProfile(ctx, in)
	if err != nil {
		return nil, fromRemote(err)
	}
	u.auth.SetUser(ctx, &out)
	return &out, nil
}

// POST /auth/change-password
func (u *AuthUsecase) ChangePassword(ctx context.Context, current string, next string) error {
	if current == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid input")
	}
	if err := u.v.ValidatePassword(ctx, next); err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if current == next {
		return NewHTTPError(http.StatusBadRequest, "password unchanged")
	}
	if err := u.api.ChangePassword(ctx, current, next); err != nil {
		return fromRemote(err)
	}
	return nil
}

// POST /auth/forgot-password
// メールの有無を漏らさないように、404でも成功扱い
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := u.v.ValidateEmail(ctx, email); err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := u.api.ForgotPassword(ctx, email); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return fromRemote(err)
	}
	return nil
}

// POST /auth/reset-password
func (u *AuthUsecase) ResetPassword(ctx context.Context, token string, password string) error {
	if err := u.v.ValidateToken(ctx, token); err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := u.v.ValidatePassword(ctx, password); err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := u.api.ResetPassword(ctx, strings.TrimSpace(token), password); err != nil {
		return fromRemote(err)
	}
	return nil
}

// POST /auth/verify-email
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token string) error {
	if err := u.v.ValidateToken(ctx, token); err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := u.api.VerifyEmail(ctx, strings.TrimSpace(token)); err != nil {
		return fromRemote(err)
	}
	return nil
}

// POST /auth/resend-verification
func (u *AuthUsecase) ResendVerification(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := u.v.ValidateEmail(ctx, email); err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := u.api.ResendVerification(ctx, email); err != nil {
		return fromRemote(err)
	}
	return nil
}
