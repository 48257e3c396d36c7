package ports

import (
	"context"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
)

// RegisterInput carries the new-user payload for upstream registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Avatar   string
}

// TokenPair is the credential exchange result. Only the access token is ever
// used; the refresh token is discarded (no renewal semantics are observed
// upstream, so none are implemented).
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthClient wraps the three remote auth calls against the upstream API.
type AuthClient interface {
	// Register submits a new-user payload and returns the created user
	// representation, or a *domain.ValidationError with the server-reported
	// message (e.g. duplicate email).
	Register(ctx context.Context, in RegisterInput) (*domain.UserProfile, error)

	// Login exchanges credentials for a token pair. Invalid credentials
	// yield a *domain.CredentialsError with the upstream message.
	Login(ctx context.Context, email, password string) (TokenPair, error)

	// Profile fetches identity and role for the given token. A rejected
	// token yields domain.ErrSessionInvalid.
	Profile(ctx context.Context, token string) (*domain.UserProfile, error)
}
