package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shopzone/storefront-gateway/internal/api/middleware"
)

// sessionID returns the session id the route guard stored on the context.
// Empty for unguarded routes.
func sessionID(c echo.Context) string {
	id, _ := c.Get(middleware.ContextSessionID).(string)
	return id
}
