package middleware

import (
	"net/http"
	"time"

	logx "storefront/pkg/logger"

	"github.com/labstack/echo/v4"
)

// 期限のこれだけ前から更新を試みる
const refreshLeeway = 30 * time.Second

// RequireAuth はセッションがログイン済みかを確認する。
// アクセストークンの exp が過ぎていればリフレッシュを1回だけ試し、
// 失敗したらそのセッションをログアウトさせて401。
func RequireAuth(now func() time.Time) echo.MiddlewareFunc {
	if now == nil {
		now = time.Now
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := SessionFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			st := s.Auth.State()
			if !st.IsAuthenticated || st.User == nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//expが読めないトークンはサーバー側の判定（401コールバック）に任せる
			if st.TokenExpiresAt != nil && !now().Add(refreshLeeway).Before(*st.TokenExpiresAt) {
				ctx := c.Request().Context()
				if err := s.Auth.RefreshSession(ctx); err != nil {
					logx.Info().Err(err).Str("session", s.ID).Msg("auth: refresh failed")
					s.Auth.HandleUnauthorized(ctx)
					return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
				}
			}

			return next(c)
		}
	}
}
