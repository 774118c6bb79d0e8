package auth

import "strings"

// Capability declares what a navigation target requires of the session.
// Every guarded route carries exactly one capability; the four former
// per-role wrapper variants collapse into this one tagged value.
type Capability string

const (
	// CapabilityPublicOnly marks targets meant for signed-out visitors
	// (login, registration). Authenticated sessions are sent to their home.
	CapabilityPublicOnly Capability = "public-only"

	// CapabilityAnyAuthenticated requires a session, any role.
	CapabilityAnyAuthenticated Capability = "any-authenticated"

	// CapabilityUserOnly requires the regular user role.
	CapabilityUserOnly Capability = "user-only"

	// CapabilityAdminOnly requires the admin role.
	CapabilityAdminOnly Capability = "admin-only"
)

// Valid reports whether the capability is one of the defined tags.
func (c Capability) Valid() bool {
	switch c {
	case CapabilityPublicOnly, CapabilityAnyAuthenticated, CapabilityUserOnly, CapabilityAdminOnly:
		return true
	default:
		return false
	}
}

// ParseCapability normalizes a capability string and reports whether it is known.
func ParseCapability(v string) (Capability, bool) {
	c := Capability(strings.ToLower(strings.TrimSpace(v)))
	return c, c.Valid()
}

// Snapshot is the guard's read-only view of the session at decision time.
// Loading means the session could not yet be resolved either way; a guard
// must never redirect off a loading snapshot.
type Snapshot struct {
	Loading       bool
	Authenticated bool
	Role          Role
}

// SnapshotOf builds a snapshot from a resolved session lookup.
// A nil session means anonymous.
func SnapshotOf(sess *Session) Snapshot {
	if sess == nil {
		return Snapshot{}
	}
	return Snapshot{Authenticated: true, Role: sess.Role}
}

// LoadingSnapshot is the snapshot used while session resolution is pending
// or the session store is unreachable.
func LoadingSnapshot() Snapshot { return Snapshot{Loading: true} }

// Decision is the outcome of a guard check.
type Decision int

const (
	// DecisionAllow renders the wrapped target.
	DecisionAllow Decision = iota

	// DecisionPlaceholder renders a neutral pending state; the session is
	// unresolved and no redirect may be issued.
	DecisionPlaceholder

	// DecisionRedirectLogin sends the caller to the public login surface.
	DecisionRedirectLogin

	// DecisionRedirectAdminHome sends an admin to the admin landing area.
	DecisionRedirectAdminHome

	// DecisionRedirectUserDashboard sends a non-admin to the user dashboard.
	DecisionRedirectUserDashboard
)

// String returns a short name for logging.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionPlaceholder:
		return "placeholder"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectAdminHome:
		return "redirect-admin-home"
	case DecisionRedirectUserDashboard:
		return "redirect-user-dashboard"
	default:
		return "unknown"
	}
}

// Decide evaluates the guard state table. It is a pure function of the
// snapshot and the capability and never panics; unknown roles hold no
// privilege and route to the least-privileged safe destination.
//
// Loading takes precedence over every other outcome so that a
// freshly-reloaded, legitimately-authenticated caller is never bounced to
// login before the session resolves.
func Decide(snap Snapshot, capability Capability) Decision {
	if snap.Loading {
		return DecisionPlaceholder
	}

	switch capability {
	case CapabilityPublicOnly:
		if !snap.Authenticated {
			return DecisionAllow
		}
		if snap.Role == RoleAdmin {
			return DecisionRedirectAdminHome
		}
		return DecisionRedirectUserDashboard

	case CapabilityAnyAuthenticated:
		if !snap.Authenticated {
			return DecisionRedirectLogin
		}
		return DecisionAllow

	case CapabilityAdminOnly:
		if !snap.Authenticated {
			return DecisionRedirectLogin
		}
		switch snap.Role {
		case RoleAdmin:
			return DecisionAllow
		case RoleUser:
			return DecisionRedirectUserDashboard
		default:
			// Unresolved role: neither dashboard is safe to assume.
			return DecisionRedirectLogin
		}

	case CapabilityUserOnly:
		if !snap.Authenticated {
			return DecisionRedirectLogin
		}
		switch snap.Role {
		case RoleUser:
			return DecisionAllow
		case RoleAdmin:
			return DecisionRedirectAdminHome
		default:
			return DecisionRedirectLogin
		}

	default:
		// Unknown capability tags deny by routing to login rather than
		// rendering a target the route author did not intend to expose.
		if snap.Authenticated {
			return DecisionRedirectUserDashboard
		}
		return DecisionRedirectLogin
	}
}
