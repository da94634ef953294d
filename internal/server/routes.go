package server

import (
	"net/http"

	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
)

const healthPath = "/health"

func RegisterRoutes(e *echo.Echo, d Deps) {
	e.GET(healthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "ok",
			"sessions": d.Manager.Len(),
		})
	})

	requireAuth := middleware.RequireAuth(d.Now)

	handler.NewHomeHandler(d.Page).RegisterRoutes(e)
	handler.NewProductHandler(d.Page).RegisterRoutes(e)
	handler.NewCartHandler(d.Page).RegisterRoutes(e, requireAuth)
	handler.NewWishlistHandler(d.Page).RegisterRoutes(e, requireAuth)
	handler.NewOrderHandler(d.Page).RegisterRoutes(e, requireAuth)
	handler.NewAuthHandler(d.Page).RegisterRoutes(e, requireAuth)
	handler.NewUIHandler(d.Page).RegisterRoutes(e)
}
