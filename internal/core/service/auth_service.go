package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopzone/storefront-gateway/internal/api/metrics"
	"github.com/shopzone/storefront-gateway/internal/core/domain"
	"github.com/shopzone/storefront-gateway/internal/core/ports"
)

// AuthService implements registration, the login pipeline and session-bound
// profile fetching.
type AuthService struct {
	auth  ports.AuthClient
	store ports.SessionStore
	log   zerolog.Logger
}

func NewAuthService(auth ports.AuthClient, store ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{auth: auth, store: store, log: log}
}

// Register forwards the new-user payload upstream. Uniqueness (duplicate
// email) is validated server-side; the reported message passes through.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
	return s.auth.Register(ctx, in)
}

// Login runs the sequential pipeline: exchange credentials, persist the
// access token under a fresh session ID, then fetch the profile with the
// stored token. A profile failure after a successful login rolls the session
// back; a valid token with an unknown identity is not a supported terminal
// state. The refresh token is discarded.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	tokens, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	if err := s.store.Set(ctx, sessionID, tokens.AccessToken); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	// The profile fetch must use the freshly stored token, not the value
	// captured above.
	token, ok, err := s.store.Get(ctx, sessionID)
	if err != nil || !ok {
		s.clear(ctx, sessionID, "rollback")
		return nil, fmt.Errorf("read back session %s: %w", sessionID, err)
	}

	profile, err := s.auth.Profile(ctx, token)
	if err != nil {
		s.clear(ctx, sessionID, "rollback")
		return nil, fmt.Errorf("fetch profile after login: %w", err)
	}

	metrics.SessionsCreatedTotal.Inc()
	return &ports.LoginResult{SessionID: sessionID, Profile: profile}, nil
}

// Profile resolves the session token and fetches the identity. An absent or
// upstream-rejected token clears the session and reports ErrSessionInvalid
// so the caller redirects to login.
func (s *AuthService) Profile(ctx context.Context, sessionID string) (*domain.UserProfile, error) {
	token, ok, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSessionInvalid
	}

	profile, err := s.auth.Profile(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionInvalid) {
			s.clear(ctx, sessionID, "invalid")
		}
		return nil, err
	}
	return profile, nil
}

// Logout destroys the session. Logging out an absent session succeeds.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	s.clear(ctx, sessionID, "logout")
	return nil
}

// clear removes the session even when the originating request is already
// gone: a half-cleared session must not survive a client disconnect.
func (s *AuthService) clear(ctx context.Context, sessionID, reason string) {
	if err := s.store.Clear(context.WithoutCancel(ctx), sessionID); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("failed to clear session")
		return
	}
	metrics.SessionsClearedTotal.WithLabelValues(reason).Inc()
}
