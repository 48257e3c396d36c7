package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/core/ports"
)

// AdminGate re-checks the role on entry to the add/edit product views by
// fetching the profile with the session token. Non-admins are redirected to
// the product list silently, with no error body. This is a UI convenience
// only: the upstream API is the actual enforcement point, and mutations from
// a non-privileged token are still rejected there even if this gate is
// bypassed.
func AdminGate(auth ports.AuthService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID, _ := c.Get(ContextSessionID).(string)

			profile, err := auth.Profile(c.Request().Context(), sessionID)
			if err != nil {
				if errors.Is(err, domain.ErrSessionInvalid) {
					return err
				}
				// Any other profile failure also ends at the login view.
				log.Warn().Err(err).Msg("admin gate profile fetch failed")
				return domain.ErrSessionInvalid
			}

			if !profile.IsAdmin() {
				return c.Redirect(http.StatusSeeOther, "/products")
			}
			return next(c)
		}
	}
}
