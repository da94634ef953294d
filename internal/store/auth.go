package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	logx "storefront/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoRefreshToken = errors.New("no refresh token")

// TokenStore はアクセス/リフレッシュトークンの置き場所
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	Save(ctx context.Context, access string, refresh string) error
	Clear(ctx context.Context) error
}

type AuthState struct {
	User            *model.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
	Loading         bool        `json:"loading"`
	Error           string      `json:"error,omitempty"`
	// アクセストークンの exp（読めなければ nil）
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
}

// Auth はログイン状態。{user, isAuthenticated} だけを auth-storage に保存する。
type Auth struct {
	*Store[AuthState]

	api     repo.AuthRepository
	tokens  TokenStore
	storage repo.LocalStorage
	writeMu sync.Mutex
}

// DI
func NewAuth(api repo.AuthRepository, tokens TokenStore, storage repo.LocalStorage) *Auth {
	return &Auth{
		Store:   newStore(AuthState{}),
		api:     api,
		tokens:  tokens,
		storage: storage,
	}
}

// ゲートウェイ呼び出し中はロックを持たない（401コールバックが同じコンテナを触るため）
func (a *Auth) mutate(ctx context.Context, fn func(s *AuthState)) AuthState {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	next := a.update(fn)
	persist(ctx, a.storage, repo.KeyAuth, model.AuthSnapshot{
		User:            next.User,
		IsAuthenticated: next.IsAuthenticated,
	})
	return next
}

func (a *Auth) Restore(ctx context.Context) error {
	snap, ok, err := restore[model.AuthSnapshot](ctx, a.storage, repo.KeyAuth)
	if err != nil || !ok {
		return err
	}
	exp := a.tokenExpiry(ctx)
	a.update(func(s *AuthState) {
		s.User = snap.User
		s.IsAuthenticated = snap.IsAuthenticated && snap.User != nil
		s.TokenExpiresAt = exp
	})
	return nil
}

func (a *Auth) startLoading() {
	a.update(func(s *AuthState) {
		s.Loading = true
		s.Error = ""
	})
}

func (a *Auth) fail(msg string) {
	a.update(func(s *AuthState) {
		s.Loading = false
		s.Error = msg
	})
}

// ログイン成功時の共通処理
func (a *Auth) signedIn(ctx context.Context, res model.AuthResponse) error {
	if err := a.tokens.Save(ctx, res.Token, res.RefreshToken); err != nil {
		return err
	}
	exp := ExpiresAt(res.Token)
	user := res.User
	a.mutate(ctx, func(s *AuthState) {
		s.User = &user
		s.IsAuthenticated = true
		s.Loading = false
		s.Error = ""
		s.TokenExpiresAt = exp
	})
	return nil
}

func (a *Auth) Login(ctx context.Context, email string, password string) error {
	a.startLoading()
	res, err := guard(func() (model.AuthResponse, error) {
		return a.api.Login(ctx, model.LoginRequest{Email: email, Password: password})
	})
	if err == nil {
		err = a.signedIn(ctx, res)
	}
	if err != nil {
		logx.Warn().Err(err).Msg("login failed")
		a.fail("Login failed. Please check your credentials.")
		return err
	}
	return nil
}

func (a *Auth) Register(ctx context.Context, req model.RegisterRequest) error {
	a.startLoading()
	res, err := guard(func() (model.AuthResponse, error) {
		return a.api.Register(ctx, req)
	})
	if err == nil {
		err = a.signedIn(ctx, res)
	}
	if err != nil {
		logx.Warn().Err(err).Msg("registration failed")
		a.fail("Registration failed. Please try again.")
		return err
	}
	return nil
}

// Logout はサーバーへの通知が失敗してもローカルの状態は消す
func (a *Auth) Logout(ctx context.Context) {
	if _, err := guard(func() (struct{}, error) { return struct{}{}, a.api.Logout(ctx) }); err != nil {
		logx.Warn().Err(err).Msg("logout request failed")
	}
	a.signOut(ctx)
}

// HandleUnauthorized は401を受けたときの処理（トークン削除とログアウト状態）
func (a *Auth) HandleUnauthorized(ctx context.Context) {
	a.signOut(ctx)
}

func (a *Auth) signOut(ctx context.Context) {
	if err := a.tokens.Clear(ctx); err != nil {
		logx.Error().Err(err).Msg("failed to clear tokens")
	}
	a.mutate(ctx, func(s *AuthState) {
		s.User = nil
		s.IsAuthenticated = false
		s.Error = ""
		s.Loading = false
		s.TokenExpiresAt = nil
	})
}

// RefreshSession はリフレッシュトークンで新しいトークンを取る
func (a *Auth) RefreshSession(ctx context.Context) error {
	refresh, err := a.tokens.RefreshToken(ctx)
	if err != nil {
		return err
	}
	if refresh == "" {
		return ErrNoRefreshToken
	}
	res, err := guard(func() (model.AuthResponse, error) {
		return a.api.Refresh(ctx, refresh)
	})
	if err != nil {
		return err
	}
	return a.signedIn(ctx, res)
}

// LoadProfile は /auth/profile でユーザー情報を取り直す
func (a *Auth) LoadProfile(ctx context.Context) error {
	u, err := guard(func() (model.User, error) { return a.api.Profile(ctx) })
	if err != nil {
		return err
	}
	a.SetUser(ctx, &u)
	return nil
}

// SetUser は nil でログアウト扱い
func (a *Auth) SetUser(ctx context.Context, u *model.User) {
	a.mutate(ctx, func(s *AuthState) {
		s.User = u
		s.IsAuthenticated = u != nil
	})
}

// CurrentUser はログイン中のユーザー（未ログインなら nil）
func (a *Auth) CurrentUser() *model.User {
	st := a.State()
	if !st.IsAuthenticated {
		return nil
	}
	return st.User
}

func (a *Auth) LastError() string {
	return a.State().Error
}

func (a *Auth) ClearError() {
	a.update(func(s *AuthState) {
		s.Error = ""
	})
}

func (a *Auth) tokenExpiry(ctx context.Context) *time.Time {
	token, err := a.tokens.Token(ctx)
	if err != nil || token == "" {
		return nil
	}
	return ExpiresAt(token)
}

// ExpiresAt はJWTの exp を読む。署名は検証しない（検証はAPI側）。
func ExpiresAt(token string) *time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	t := exp.Time
	return &t
}
