package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Fadhail/petshop-api/internal/core"
	"github.com/Fadhail/petshop-api/internal/data"
	domainauth "github.com/Fadhail/petshop-api/internal/domain/auth"
	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/ports"
)

var (
	// ErrInvalidCredentials is returned on login with an unknown email or
	// wrong password. Callers surface the same message for both so the
	// response doesn't leak which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionExpired is returned when a session exists but its expiry has passed.
	ErrSessionExpired = errors.New("session expired")
	// ErrSSODisabled is returned for SSO operations when the portal runs in password mode.
	ErrSSODisabled = errors.New("sso login is not enabled")
)

// AuthServiceOptions groups dependencies for AuthService.
// Provider and Roles are only needed in SSO mode; password mode leaves them nil.
type AuthServiceOptions struct {
	Users      core.UserRepository
	Sessions   ports.SessionStore
	Hasher     ports.PasswordHasher
	Provider   ports.SSOProvider
	Roles      ports.RoleMapper
	SessionTTL time.Duration
}

// AuthService orchestrates registration, login, and session lifecycle.
type AuthService struct {
	users      core.UserRepository
	sessions   ports.SessionStore
	hasher     ports.PasswordHasher
	provider   ports.SSOProvider
	roles      ports.RoleMapper
	sessionTTL time.Duration
}

const defaultSessionTTL = 24 * time.Hour

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		users:      opts.Users,
		sessions:   opts.Sessions,
		hasher:     opts.Hasher,
		provider:   opts.Provider,
		roles:      opts.Roles,
		sessionTTL: ttl,
	}
}

// Register creates a new account with the user role. Validation errors come
// back as model.FieldErrors; a duplicate email maps to data.ErrUserEmailExists.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if req == nil {
		return nil, errors.New("register request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, &model.CreateUserRequest{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domainauth.RoleUser,
	})
}

// LoginResult bundles the persisted session with its bearer token.
type LoginResult struct {
	Session domainauth.Session
	User    *model.User
}

// Login verifies credentials and opens a session.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*LoginResult, error) {
	if req == nil {
		return nil, errors.New("login request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up account: %w", err)
	}

	if compareErr := s.hasher.Compare(user.PasswordHash, req.Password); compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := s.openSession(ctx, user.ID, user.Name, user.Email, user.Role, time.Now().Add(s.sessionTTL))
	if err != nil {
		return nil, err
	}
	return &LoginResult{Session: session, User: user}, nil
}

// GetSession retrieves a live session by token. Expired sessions are cleaned
// up and reported as ErrSessionExpired; a missing session yields
// ports.ErrSessionNotFound. Any other error means the store is unreachable.
func (s *AuthService) GetSession(ctx context.Context, token string) (*domainauth.Session, error) {
	if token == "" {
		return nil, ports.ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, ports.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(time.Now()) {
		if deleteErr := s.sessions.Delete(ctx, token); deleteErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Logout removes a session. Logging out a token that no longer exists is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// BeginLoginResult contains the result of beginning an SSO login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates an SSO flow and returns the provider auth URL with state and nonce.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if s.provider == nil {
		return nil, ErrSSODisabled
	}
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteLoginInput groups parameters for completing an SSO login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLogin exchanges the authorization code for an identity, maps the
// IdP groups to a portal role, and opens a session.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*LoginResult, error) {
	if s.provider == nil {
		return nil, ErrSSODisabled
	}
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	role := domainauth.RoleUser
	if s.roles != nil {
		role = s.roles.Map(identity.Groups)
	}

	expiresAt := identity.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(s.sessionTTL)
	}

	session, err := s.openSession(ctx, identity.UserID, identity.Name, identity.Email, role, expiresAt)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Session: session}, nil
}

func (s *AuthService) openSession(
	ctx context.Context,
	userID, name, email string,
	role domainauth.Role,
	expiresAt time.Time,
) (domainauth.Session, error) {
	session := domainauth.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Email:     email,
		Role:      role,
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}
