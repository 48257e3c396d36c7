package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/core/ports"
)

// Defaults mirror the register form's initial values.
const (
	defaultRole   = "customer"
	defaultAvatar = "https://picsum.photos/200"
)

// AuthHandler handles registration, the login pipeline and logout.
type AuthHandler struct {
	service    ports.AuthService
	cookieName string
	cookieTTL  time.Duration
}

func NewAuthHandler(service ports.AuthService, cookieName string, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: service, cookieName: cookieName, cookieTTL: cookieTTL}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	User     *domain.UserProfile `json:"user"`
	Redirect string              `json:"redirect,omitempty"`
}

// Register creates a new user account upstream.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "New user details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return &domain.ValidationError{Message: "invalid payload"}
	}
	if req.Role == "" {
		req.Role = defaultRole
	}
	if req.Avatar == "" {
		req.Avatar = defaultAvatar
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sessionResponse{User: user, Redirect: "/login"})
}

// Login runs the login pipeline and commits the session cookie on success.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return &domain.ValidationError{Message: "invalid payload"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, result.SessionID, int(h.cookieTTL.Seconds()))
	return c.JSON(http.StatusOK, sessionResponse{User: result.Profile, Redirect: "/dashboard"})
}

// Logout destroys the session and expires the cookie. Always succeeds, even
// without an active session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.service.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	h.setSessionCookie(c, "", -1)
	return c.JSON(http.StatusOK, sessionResponse{Redirect: "/login"})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
