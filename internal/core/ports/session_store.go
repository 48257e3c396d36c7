package ports

import "context"

// SessionStore persists the upstream bearer token under an opaque session
// ID. It is the only shared mutable state in the service and is accessed
// exclusively through this narrow contract, never ambiently.
type SessionStore interface {
	// Set persists the token for the session, overwriting any prior value.
	Set(ctx context.Context, sessionID, token string) error

	// Get returns the stored token. ok is false when the session is absent.
	// It does not validate token format or expiry.
	Get(ctx context.Context, sessionID string) (token string, ok bool, err error)

	// Has is a coarse "is logged in" signal: presence only, not validity.
	// A stale token still reads as logged-in until the upstream rejects it.
	Has(ctx context.Context, sessionID string) (bool, error)

	// Clear removes the session. Clearing an absent session is a no-op.
	Clear(ctx context.Context, sessionID string) error
}
