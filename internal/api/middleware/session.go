package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/core/ports"
)

// ContextSessionID is the echo context key under which the guard stores the
// caller's session id for downstream handlers.
const ContextSessionID = "session_id"

// SessionGuard is the route guard for protected views. The check is
// presence-only: a stale or revoked token still passes here and fails later
// inside the view when the upstream rejects it. Denied navigation never
// reaches the handler and the client is sent to the login view.
func SessionGuard(store ports.SessionStore, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return domain.ErrSessionInvalid
			}

			ok, err := store.Has(c.Request().Context(), cookie.Value)
			if err != nil {
				return fmt.Errorf("session lookup: %w", err)
			}
			if !ok {
				return domain.ErrSessionInvalid
			}

			c.Set(ContextSessionID, cookie.Value)
			return next(c)
		}
	}
}
