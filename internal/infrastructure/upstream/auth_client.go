package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/core/ports"
)

// AuthClient wraps the three remote auth calls: register, login, profile.
type AuthClient struct {
	c *Client
}

// NewAuthClient creates an AuthClient on top of the shared API client.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register submits a new-user payload to POST /users/. Server-side
// validation failures (duplicate email and the like) surface as
// *domain.ValidationError with the reported message.
func (a *AuthClient) Register(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
	payload := registerPayload{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
		Avatar:   in.Avatar,
	}

	var user domain.UserProfile
	if err := a.c.doJSON(ctx, "register", http.MethodPost, "/users/", nil, "", payload, &user); err != nil {
		var ue *Error
		if errors.As(err, &ue) {
			switch ue.StatusCode {
			case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
				return nil, &domain.ValidationError{Message: ue.Message}
			}
		}
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a token pair at POST /auth/login. The
// upstream message for rejected credentials is surfaced verbatim.
func (a *AuthClient) Login(ctx context.Context, email, password string) (ports.TokenPair, error) {
	var tokens tokenResponse
	err := a.c.doJSON(ctx, "login", http.MethodPost, "/auth/login", nil, "", loginPayload{Email: email, Password: password}, &tokens)
	if err != nil {
		var ue *Error
		if errors.As(err, &ue) {
			switch ue.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return ports.TokenPair{}, &domain.CredentialsError{Message: ue.Message}
			case http.StatusBadRequest, http.StatusUnprocessableEntity:
				return ports.TokenPair{}, &domain.ValidationError{Message: ue.Message}
			}
		}
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

// Profile fetches GET /auth/profile with the given bearer token. A rejected
// token means the session is invalid; callers clear it and redirect to login.
func (a *AuthClient) Profile(ctx context.Context, token string) (*domain.UserProfile, error) {
	var user domain.UserProfile
	if err := a.c.doJSON(ctx, "profile", http.MethodGet, "/auth/profile", nil, token, nil, &user); err != nil {
		var ue *Error
		if errors.As(err, &ue) && (ue.StatusCode == http.StatusUnauthorized || ue.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionInvalid, ue.Message)
		}
		return nil, err
	}
	return &user, nil
}
