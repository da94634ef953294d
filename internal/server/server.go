package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/handler"
	"storefront/internal/middleware"
	"storefront/internal/session"
	logx "storefront/pkg/logger"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Deps struct {
	Manager *session.Manager
	Page    handler.PageConfig
	Session middleware.SessionConfig
	// RequireAuth の時計（nil なら time.Now）
	Now func() time.Time
}

// New は echo を組み立てる。
// ミドルウェアの順: ログ → recover → セッション → 言語
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if d.Session.Skipper == nil {
		d.Session.Skipper = func(c echo.Context) bool {
			return c.Path() == healthPath
		}
	}

	e.Use(middleware.RequestLog())
	e.Use(echomw.Recover())
	e.Use(middleware.Session(d.Manager, d.Session))
	e.Use(middleware.Language())

	RegisterRoutes(e, d)
	return e
}

// Start は止められるまでブロックする。Shutdown による終了はエラーにしない。
func Start(e *echo.Echo, addr string) error {
	logx.Info().Str("addr", addr).Msg("server: listening")
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func Shutdown(ctx context.Context, e *echo.Echo) error {
	logx.Info().Msg("server: shutting down")
	return e.Shutdown(ctx)
}
