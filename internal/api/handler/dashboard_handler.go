package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/core/ports"
)

// DashboardHandler serves the landing view after login.
type DashboardHandler struct {
	service ports.AuthService
}

func NewDashboardHandler(service ports.AuthService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type dashboardResponse struct {
	User         *domain.UserProfile `json:"user"`
	Capabilities domain.Capabilities `json:"capabilities"`
}

// Get re-fetches the profile with the session token. A rejected token ends
// with the session cleared and a redirect to the login view.
func (h *DashboardHandler) Get(c echo.Context) error {
	profile, err := h.service.Profile(c.Request().Context(), sessionID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		User:         profile,
		Capabilities: profile.Capabilities(),
	})
}
