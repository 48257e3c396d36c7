package ports

import (
	"context"

	"github.com/shopzone/storefront-gateway/internal/core/domain"
)

// LoginResult is the terminal state of a successful login pipeline: a
// committed session and the identity fetched with its token.
type LoginResult struct {
	SessionID string
	Profile   *domain.UserProfile
}

// AuthService orchestrates the authentication flows. The login pipeline is
// sequential with an enforced rollback: a valid token whose profile fetch
// fails is not a supported terminal state and must be cleared.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.UserProfile, error)

	// Login runs login → persist token → fetch profile. The token is
	// persisted before the profile fetch issues, and the fetch uses the
	// freshly stored token. Any profile failure rolls the session back.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Profile resolves the session token and fetches identity. On an
	// absent or upstream-rejected token it clears the session and returns
	// domain.ErrSessionInvalid.
	Profile(ctx context.Context, sessionID string) (*domain.UserProfile, error)

	// Logout destroys the session.
	Logout(ctx context.Context, sessionID string) error
}
