package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/gateway"
	infra "storefront/internal/infra/repository"
	repo "storefront/internal/repository"
	"storefront/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

type authEnv struct {
	api     *AuthRepoMock
	storage *infra.LocalStorageMemoryRepository
	tokens  *gateway.StorageTokens
	auth    *store.Auth
}

func newAuthEnv() *authEnv {
	storage := infra.NewLocalStorageMemoryRepository()
	tokens := gateway.NewStorageTokens(storage, "auth_token", "refresh_token")
	api := new(AuthRepoMock)
	return &authEnv{
		api:     api,
		storage: storage,
		tokens:  tokens,
		auth:    store.NewAuth(api, tokens, storage),
	}
}

// =====================
// Auth
// =====================

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	env := newAuthEnv()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, exp)

	env.api.On("Login", mock.Anything, model.LoginRequest{Email: "a@example.com", Password: "pw"}).
		Return(model.AuthResponse{User: model.User{ID: "u1", Email: "a@example.com"}, Token: token, RefreshToken: "r1"}, nil).Once()

	require.NoError(t, env.auth.Login(ctx, "a@example.com", "pw"))

	s := env.auth.State()
	assert.True(t, s.IsAuthenticated)
	require.NotNil(t, s.User)
	assert.Equal(t, "u1", s.User.ID)
	assert.False(t, s.Loading)
	require.NotNil(t, s.TokenExpiresAt)
	assert.True(t, exp.Equal(*s.TokenExpiresAt))

	access, _ := env.tokens.Token(ctx)
	refresh, _ := env.tokens.RefreshToken(ctx)
	assert.Equal(t, token, access)
	assert.Equal(t, "r1", refresh)

	_, err := env.storage.Get(ctx, repo.KeyAuth)
	assert.NoError(t, err)
}

func TestAuth_Login_Failure(t *testing.T) {
	env := newAuthEnv()
	env.api.On("Login", mock.Anything, mock.Anything).Return(nil, errors.New("invalid credentials")).Once()

	err := env.auth.Login(context.Background(), "a@example.com", "bad")
	assert.Error(t, err)

	s := env.auth.State()
	assert.False(t, s.IsAuthenticated)
	assert.False(t, s.Loading)
	assert.Equal(t, "Login failed. Please check your credentials.", s.Error)

	env.auth.ClearError()
	assert.Empty(t, env.auth.State().Error)
}

func TestAuth_Register(t *testing.T) {
	env := newAuthEnv()
	req := model.RegisterRequest{Email: "n@example.com", Password: "pw", FirstName: "New"}
	env.api.On("Register", mock.Anything, req).
		Return(model.AuthResponse{User: model.User{ID: "u2", Email: req.Email}, Token: "opaque"}, nil).Once()

	require.NoError(t, env.auth.Register(context.Background(), req))
	s := env.auth.State()
	assert.True(t, s.IsAuthenticated)
	// JWTでないトークンは期限不明
	assert.Nil(t, s.TokenExpiresAt)
}

func TestAuth_LogoutClearsEvenWhenServerFails(t *testing.T) {
	ctx := context.Background()
	env := newAuthEnv()
	require.NoError(t, env.tokens.Save(ctx, "a", "r"))
	env.auth.SetUser(ctx, &model.User{ID: "u1"})
	env.api.On("Logout", mock.Anything).Return(errors.New("down")).Once()

	env.auth.Logout(ctx)

	s := env.auth.State()
	assert.False(t, s.IsAuthenticated)
	assert.Nil(t, s.User)
	access, _ := env.tokens.Token(ctx)
	assert.Empty(t, access)
}

func TestAuth_HandleUnauthorized(t *testing.T) {
	ctx := context.Background()
	env := newAuthEnv()
	require.NoError(t, env.tokens.Save(ctx, "a", "r"))
	env.auth.SetUser(ctx, &model.User{ID: "u1"})

	env.auth.HandleUnauthorized(ctx)

	assert.False(t, env.auth.State().IsAuthenticated)
	refresh, _ := env.tokens.RefreshToken(ctx)
	assert.Empty(t, refresh)

	reloaded := store.NewAuth(env.api, env.tokens, env.storage)
	require.NoError(t, reloaded.Restore(ctx))
	assert.False(t, reloaded.State().IsAuthenticated)
}

func TestAuth_RefreshSession(t *testing.T) {
	ctx := context.Background()
	env := newAuthEnv()

	assert.ErrorIs(t, env.auth.RefreshSession(ctx), store.ErrNoRefreshToken)

	require.NoError(t, env.tokens.Save(ctx, "old", "r1"))
	env.api.On("Refresh", mock.Anything, "r1").
		Return(model.AuthResponse{User: model.User{ID: "u1"}, Token: "new", RefreshToken: "r2"}, nil).Once()

	require.NoError(t, env.auth.RefreshSession(ctx))
	access, _ := env.tokens.Token(ctx)
	refresh, _ := env.tokens.RefreshToken(ctx)
	assert.Equal(t, "new", access)
	assert.Equal(t, "r2", refresh)
	assert.True(t, env.auth.State().IsAuthenticated)
}

func TestAuth_RestoreAndLoadProfile(t *testing.T) {
	ctx := context.Background()
	env := newAuthEnv()
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	require.NoError(t, env.tokens.Save(ctx, signedToken(t, exp), "r"))
	env.auth.SetUser(ctx, &model.User{ID: "u1", FirstName: "Old"})

	reloaded := store.NewAuth(env.api, env.tokens, env.storage)
	require.NoError(t, reloaded.Restore(ctx))
	s := reloaded.State()
	assert.True(t, s.IsAuthenticated)
	assert.Equal(t, "Old", s.User.FirstName)
	require.NotNil(t, s.TokenExpiresAt)
	assert.True(t, exp.Equal(*s.TokenExpiresAt))

	env.api.On("Profile", mock.Anything).Return(model.User{ID: "u1", FirstName: "New"}, nil).Once()
	require.NoError(t, reloaded.LoadProfile(ctx))
	assert.Equal(t, "New", reloaded.State().User.FirstName)
}

func TestExpiresAt_InvalidToken(t *testing.T) {
	assert.Nil(t, store.ExpiresAt(""))
	assert.Nil(t, store.ExpiresAt("not.a.jwt"))
}
