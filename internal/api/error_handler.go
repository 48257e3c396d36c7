package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/infrastructure/upstream"
)

// errorResponse is the canonical error envelope for all API errors. Redirect
// carries the route the client should navigate to, when one applies.
type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Attaches the login redirect for invalid sessions and unmatched routes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from the router, etc.).
	// Unmatched navigation falls through to the login view.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		body := errorResponse{Error: fmt.Sprintf("%v", he.Message)}
		if he.Code == http.StatusNotFound {
			body.Redirect = "/login"
		}
		return he.Code, body
	}

	// Validation and authentication failures surface the reported message
	// inline; the form stays editable and no redirect happens.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Error: ve.Message}
	}
	var ce *domain.CredentialsError
	if errors.As(err, &ce) {
		return http.StatusUnauthorized, errorResponse{Error: ce.Message}
	}

	// An upstream error that no client translated (e.g. the upload host
	// failing) still surfaces its message instead of a blank 500.
	var ue *upstream.Error
	if errors.As(err, &ue) {
		return http.StatusBadGateway, errorResponse{Error: ue.Message}
	}

	switch {
	case errors.Is(err, domain.ErrSessionInvalid):
		return http.StatusUnauthorized, errorResponse{Error: "login required", Redirect: "/login"}
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, errorResponse{Error: "product not found"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "access forbidden"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
