package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/mockcatalog"
	infra "storefront/internal/infra/repository"
	"storefront/internal/session"
	"storefront/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type env struct {
	storage *infra.LocalStorageMemoryRepository
	clock   *clock
	backend *echo.Echo
	mgr     *session.Manager
}

func newEnv(t *testing.T, mock bool) *env {
	t.Helper()
	e := &env{
		storage: infra.NewLocalStorageMemoryRepository(),
		clock:   &clock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
		backend: echo.New(),
	}
	srv := httptest.NewServer(e.backend)
	t.Cleanup(srv.Close)

	opts := session.Options{
		Storage:  e.storage,
		BaseURL:  srv.URL,
		Timeout:  2 * time.Second,
		PageSize: 4,
		TTL:      time.Hour,
		Now:      e.clock.Now,
	}
	if mock {
		opts.MockCatalog = mockcatalog.NewSeeded(e.clock.Now())
	}
	mgr, err := session.NewManager(opts)
	require.NoError(t, err)
	t.Cleanup(mgr.Close)
	e.mgr = mgr
	return e
}

func TestNewManager_RequiresStorageAndURL(t *testing.T) {
	_, err := session.NewManager(session.Options{BaseURL: "http://x"})
	assert.Error(t, err)
	_, err = session.NewManager(session.Options{Storage: infra.NewLocalStorageMemoryRepository()})
	assert.Error(t, err)
}

func TestManager_OpenReusesSession(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)

	s, created, err := e.mgr.Open(ctx, "", "")
	require.NoError(t, err)
	assert.True(t, created)
	_, err = uuid.Parse(s.ID)
	assert.NoError(t, err)

	again, created, err := e.mgr.Open(ctx, s.ID, "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, s, again)

	// 不正なIDは作り直し
	other, created, err := e.mgr.Open(ctx, "not-a-uuid", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, s.ID, other.ID)
	assert.Equal(t, 2, e.mgr.Len())
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)

	a, _, err := e.mgr.Open(ctx, "", "")
	require.NoError(t, err)
	b, _, err := e.mgr.Open(ctx, "", "")
	require.NoError(t, err)

	_, err = a.Carts.AddToCart(ctx, "prod-1", 2)
	require.NoError(t, err)
	a.UI.SetTheme(model.ThemeDark)

	assert.Equal(t, 2, a.Cart.State().TotalItems)
	assert.Empty(t, b.Cart.State().Items)
	assert.Equal(t, model.ThemeLight, b.UI.State().Theme)
}

func TestManager_SweepAndRestoreFromStorage(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)

	s, _, err := e.mgr.Open(ctx, "", "ms-MY")
	require.NoError(t, err)
	assert.Equal(t, "my", s.I18n.Language())
	_, err = s.Carts.AddToCart(ctx, "prod-7", 3)
	require.NoError(t, err)
	_, err = s.Wishes.Add(ctx, "prod-2")
	require.NoError(t, err)

	e.clock.Advance(30 * time.Minute)
	assert.Equal(t, 0, e.mgr.Sweep())

	e.clock.Advance(2 * time.Hour)
	assert.Equal(t, 1, e.mgr.Sweep())
	_, ok := e.mgr.Get(s.ID)
	assert.False(t, ok)

	// 同じIDで戻ってくると保存済みの状態から組み直す
	back, created, err := e.mgr.Open(ctx, s.ID, "en-US")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotSame(t, s, back)
	assert.Equal(t, 3, back.Cart.State().TotalItems)
	assert.True(t, back.Wishlist.IsInWishlist("prod-2"))
	assert.Equal(t, "my", back.I18n.Language())
	assert.Equal(t, "Troli", back.T("header", "cart"))
}

func TestManager_MockCatalogAndLoadingMirror(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	s, _, err := e.mgr.Open(ctx, "", "")
	require.NoError(t, err)

	var seen []bool
	var mu sync.Mutex
	unsub := s.UI.Subscribe(func(st store.UIState) {
		mu.Lock()
		seen = append(seen, st.Loading[store.LoadingProducts])
		mu.Unlock()
	})
	defer unsub()

	require.NoError(t, s.Catalog.Fetch(ctx, nil))
	st := s.Catalog.State()
	assert.Len(t, st.Products, 9)
	assert.Len(t, st.FilteredProducts, 9)
	assert.False(t, s.UI.State().Loading[store.LoadingProducts])

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, seen, true)
}

func TestManager_UnauthorizedSignsOutOnlyThatSession(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	e.backend.GET("/auth/profile", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "token expired"})
	})

	a, _, err := e.mgr.Open(ctx, "", "")
	require.NoError(t, err)
	b, _, err := e.mgr.Open(ctx, "", "")
	require.NoError(t, err)

	for _, s := range []*session.Session{a, b} {
		u := &model.User{ID: "u-" + s.ID}
		s.Auth.SetUser(ctx, u)
	}

	err = a.Auth.LoadProfile(ctx)
	assert.Error(t, err)

	assert.False(t, a.Auth.State().IsAuthenticated)
	assert.True(t, b.Auth.State().IsAuthenticated)
}
