package domain

// RoleAdmin is the only role string with meaning anywhere in the client.
// Every other value (including "customer") is treated as non-admin.
const RoleAdmin = "admin"

// UserProfile models the identity returned by the upstream profile endpoint.
// It is never persisted; each view re-fetches it with the session token.
type UserProfile struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// IsAdmin reports whether the profile carries the admin role.
func (p UserProfile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Capabilities is the derived set of catalog mutations the current user may
// perform. Views consume capabilities instead of comparing role strings.
type Capabilities struct {
	CanCreate bool `json:"can_create"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

// Capabilities derives the capability set from the profile role. The zero
// value (no capabilities) is the correct default for unknown identities.
func (p UserProfile) Capabilities() Capabilities {
	admin := p.IsAdmin()
	return Capabilities{CanCreate: admin, CanEdit: admin, CanDelete: admin}
}
