package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"

	// RoleNone marks a session whose identity could not be resolved.
	// It is never treated as a privilege.
	RoleNone Role = ""
)

// ParseRole normalizes a role string and reports whether it names a known role.
// Unknown values map to RoleNone so callers fail toward less privilege.
func ParseRole(v string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(v))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	default:
		return RoleNone, false
	}
}

// Identity represents the authenticated principal returned by an identity
// provider in SSO mode. Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string
	Name      string
	Email     string
	Groups    []string
	ExpiresAt time.Time
}

// Session is the server-side record persisted for an authenticated user.
// Token is the opaque bearer credential handed to the client; its presence
// alone means "authenticated", while Role may legitimately be unresolved.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// IsUser reports whether the session carries the regular user role.
func (s Session) IsUser() bool { return s.Role == RoleUser }

// RoleResolved reports whether the session identity resolved to a known role.
// A session may exist with an unresolved role; such a session is
// authenticated but holds no privilege.
func (s Session) RoleResolved() bool { return s.Role == RoleAdmin || s.Role == RoleUser }

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
