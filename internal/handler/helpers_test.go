package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/mockcatalog"
	infra "storefront/internal/infra/repository"
	"storefront/internal/server"
	"storefront/internal/session"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ===== テスト用のストアフロント一式 =====
// 商品・カテゴリはモック、カート/注文/認証は backend（httptest）へ行く。

type TestClient struct {
	t       *testing.T
	app     *echo.Echo
	backend *echo.Echo
	mgr     *session.Manager

	mu       sync.Mutex
	cookies  []*http.Cookie
	requests []Captured
}

// backend が受けたリクエスト
type Captured struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	c := &TestClient{t: t, backend: echo.New()}
	c.backend.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			req := ec.Request()
			body, _ := io.ReadAll(req.Body)
			req.Body = io.NopCloser(bytes.NewReader(body))

			c.mu.Lock()
			c.requests = append(c.requests, Captured{
				Method: req.Method,
				Path:   req.URL.Path,
				Header: req.Header.Clone(),
				Body:   body,
			})
			c.mu.Unlock()
			return next(ec)
		}
	})
	srv := httptest.NewServer(c.backend)
	t.Cleanup(srv.Close)

	mgr, err := session.NewManager(session.Options{
		Storage:     infra.NewLocalStorageMemoryRepository(),
		BaseURL:     srv.URL,
		Timeout:     2 * time.Second,
		MockCatalog: mockcatalog.NewSeeded(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		Pricing: usecase.Pricing{
			TaxRate:          decimal.RequireFromString("0.08"),
			ShippingFee:      decimal.RequireFromString("9.99"),
			FreeShippingOver: decimal.RequireFromString("100"),
		},
		PageSize: 12,
		TTL:      time.Hour,
	})
	require.NoError(t, err)
	t.Cleanup(mgr.Close)
	c.mgr = mgr

	c.app = server.New(server.Deps{
		Manager: mgr,
		Page: handler.PageConfig{
			AppName:        "E-Commerce App",
			AppVersion:     "1.0.0",
			Currency:       "USD",
			CurrencySymbol: "$",
		},
	})
	return c
}

// Do はクッキーを引き継いでリクエストする。headers は key, value の順。
func (c *TestClient) Do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	c.t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c.app.ServeHTTP(rec, req)
	if cs := rec.Result().Cookies(); len(cs) > 0 {
		c.cookies = cs
	}
	return rec
}

// path が一致するものだけ
func (c *TestClient) Requests(path string) []Captured {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Captured
	for _, r := range c.requests {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Login は backend に /auth/login を用意してログインする
func (c *TestClient) Login() {
	c.t.Helper()
	c.backend.POST("/auth/login", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, model.Envelope[model.AuthResponse]{
			Success: true,
			Data: model.AuthResponse{
				User:         model.User{ID: "u-1", Email: "aiko@example.com", FirstName: "Aiko", LastName: "Tan"},
				Token:        "access-1",
				RefreshToken: "refresh-1",
			},
		})
	})
	rec := c.Do(http.MethodPost, "/auth/login", map[string]string{"email": "aiko@example.com", "password": "password123"})
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
}

type Page[T any] struct {
	Chrome handler.Chrome    `json:"chrome"`
	Labels map[string]string `json:"labels"`
	Data   T                 `json:"data"`
}

func mustDecode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProductList struct {
	Products   []handler.ProductCard `json:"products"`
	Pagination model.Pagination      `json:"pagination"`
	Brands     []string              `json:"brands"`
}

type CartPage struct {
	Cart     model.CartSnapshot `json:"cart"`
	Subtotal string             `json:"subtotalLabel"`
	Shipping string             `json:"shippingLabel"`
	Tax      string             `json:"taxLabel"`
	Total    string             `json:"totalLabel"`
	IsEmpty  bool               `json:"isEmpty"`
}

type WishlistPage struct {
	Items []struct {
		ID     string `json:"id"`
		InCart bool   `json:"inCart"`
	} `json:"items"`
	TotalItems int  `json:"totalItems"`
	IsEmpty    bool `json:"isEmpty"`
}

func names(cards []handler.ProductCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Name)
	}
	return out
}
