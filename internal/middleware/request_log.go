package middleware

import (
	"time"

	logx "storefront/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLog は1リクエスト1行で記録する。5xxはError、4xxはWarn。
func RequestLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				//echoのエラーハンドラにステータスを決めさせる
				c.Error(err)
			}

			status := c.Response().Status
			var ev *zerolog.Event
			switch {
			case status >= 500:
				ev = logx.Error()
			case status >= 400:
				ev = logx.Warn()
			default:
				ev = logx.Info()
			}

			req := c.Request()
			ev = ev.Str("method", req.Method).
				Str("path", c.Path()).
				Str("uri", req.RequestURI).
				Int("status", status).
				Dur("latency", time.Since(start))
			if s, ok := SessionFrom(c); ok {
				ev = ev.Str("session", s.ID)
			}
			if err != nil {
				ev = ev.Err(err)
			}
			ev.Msg("request")
			return nil
		}
	}
}
