package middleware

import (
	logx "storefront/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Language は ?lng= があれば言語を切り替え、Content-Language を付ける。
// Session の後に置く。
func Language() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := SessionFrom(c)
			if !ok {
				return next(c)
			}

			if lng := c.QueryParam("lng"); lng != "" {
				//未対応の言語は無視して今の言語のまま
				if err := s.I18n.ChangeLanguage(c.Request().Context(), lng); err != nil {
					logx.Debug().Err(err).Msg("language: ignored")
				}
			}

			c.Response().Header().Set("Content-Language", s.I18n.Language())
			return next(c)
		}
	}
}
