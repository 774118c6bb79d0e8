package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	"github.com/Fadhail/petshop-api/internal/domain/auth"
)

// ErrSessionNotFound is returned by SessionStore.Get when no session exists
// for the token. Store implementations must return exactly this sentinel so
// callers can tell "no session" apart from a store outage.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists and retrieves user sessions keyed by their token.
type SessionStore interface {
	Save(ctx context.Context, sess auth.Session) error
	Get(ctx context.Context, token string) (auth.Session, error)
	Delete(ctx context.Context, token string) error
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when the password matches the stored hash.
	Compare(hash, password string) error
}

// BeginInput carries inputs for initiating an SSO flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// SSOProvider initiates and completes an authentication flow against an IdP.
// Used only when the portal runs in SSO mode; password auth does not touch it.
type SSOProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (auth.Identity, error)
}

// RoleMapper maps IdP groups to application roles.
type RoleMapper interface {
	Map(groups []string) auth.Role
}
