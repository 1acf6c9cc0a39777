package handlers

import (
	"net/url"

	"github.com/anonto42/medishare/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the authenticated user id, or 0 when the route
// is not behind JWTAuthMiddleware.
func getUserIDFromContext(c echo.Context) uint {
	id, _ := c.Get(middleware.UserIDKey).(uint)
	return id
}

// pathParam returns the decoded value of a path parameter. echo matches on
// URL.Path, already decoded, unless the request carries a RawPath.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
