package middleware

import (
	"net/http"
	"time"

	"storefront/internal/session"
	logx "storefront/pkg/logger"

	"github.com/labstack/echo/v4"
)

const CtxSessionKey = "session" // *session.Session

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

type SessionConfig struct {
	// ヘルスチェックなどセッション不要のパス
	Skipper    func(c echo.Context) bool
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Session はクッキーのIDでセッションを開き、contextへ入れる。
// IDが無い・不正・作り直しになった場合はクッキーを書き直す。
func Session(mgr *session.Manager, cfg SessionConfig) echo.MiddlewareFunc {
	if cfg.CookieName == "" {
		cfg.CookieName = "sf_session"
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper != nil && cfg.Skipper(c) {
				return next(c)
			}

			var id string
			if ck, err := c.Cookie(cfg.CookieName); err == nil {
				id = ck.Value
			}

			req := c.Request()
			s, _, err := mgr.Open(req.Context(), id, req.Header.Get("Accept-Language"))
			if err != nil {
				logx.Error().Err(err).Msg("session: open failed")
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			if s.ID != id {
				c.SetCookie(&http.Cookie{
					Name:     cfg.CookieName,
					Value:    s.ID,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(CtxSessionKey, s)
			return next(c)
		}
	}
}

// SessionFrom は Session ミドルウェアが入れたセッションを取り出す
func SessionFrom(c echo.Context) (*session.Session, bool) {
	s, ok := c.Get(CtxSessionKey).(*session.Session)
	return s, ok && s != nil
}
