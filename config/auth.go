package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModePassword uses local email/password accounts.
	AuthModePassword AuthMode = "password"
	// AuthModeSSO adds OIDC single sign-on alongside local accounts.
	AuthModeSSO AuthMode = "sso"
	// AuthModeMock uses a canned SSO identity (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "password", "sso", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: password, sso, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration for AUTH_MODE=sso.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"petshop"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"petshop"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/api/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// DevAuthConfig controls the mock SSO identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID string   `env:"USER_ID" envDefault:"dev-user"`
	Name   string   `env:"NAME"    envDefault:"Dev User"`
	Email  string   `env:"EMAIL"   envDefault:"dev@example.com"`
	Groups []string `env:"GROUPS"  envDefault:"admins"          envSeparator:";"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which sign-in surface is offered.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"password"`

	// SessionTTL is how long a session stays valid after sign-in.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// BcryptCost is the work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`

	// OAuth configuration (used when Mode=sso).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// AdminGroup is the IdP group whose members sign in as admins.
	AdminGroup string `env:"ADMIN_GROUP" envDefault:"petshop-admins"`

	// UserGroup is the IdP group whose members sign in as regular users.
	UserGroup string `env:"USER_GROUP" envDefault:"petshop-users"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL < time.Minute {
		a.SessionTTL = time.Minute
	}
	// Clamp the cost to the range bcrypt itself accepts
	if a.BcryptCost < bcrypt.MinCost {
		a.BcryptCost = bcrypt.DefaultCost
	}
	if a.BcryptCost > bcrypt.MaxCost {
		a.BcryptCost = bcrypt.MaxCost
	}
}
