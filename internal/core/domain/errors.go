package domain

import "errors"

var (
	// ErrSessionInvalid marks a missing, expired or upstream-rejected
	// session. Callers must clear the session and send the user to login.
	ErrSessionInvalid = errors.New("session invalid")

	// ErrProductNotFound is returned when the requested product id does not
	// exist upstream. Views render a load-error state, never a crash.
	ErrProductNotFound = errors.New("product not found")

	// ErrForbidden is returned when the upstream API rejects a mutation from
	// a non-privileged token. The server is the real enforcement point; the
	// client-side admin gate is a convenience on top of it.
	ErrForbidden = errors.New("access forbidden")
)

// ValidationError carries a server- or client-reported message about a bad
// form payload. The message is surfaced to the user as-is and the form stays
// re-editable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// CredentialsError reports a failed login attempt. The upstream message is
// surfaced verbatim; no redirect happens and no session is created.
type CredentialsError struct {
	Message string
}

func (e *CredentialsError) Error() string { return e.Message }
