package server

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// caseInsensitivePaths lowercases the request path before routing, so /WeatherForecast/Login and
// /weatherforecast/login reach the same handler. Routes must be registered in lowercase.
func caseInsensitivePaths(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u := c.Request().URL
		u.Path = strings.ToLower(u.Path)
		if u.RawPath != "" {
			u.RawPath = strings.ToLower(u.RawPath)
		}
		return next(c)
	}
}
