package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Fadhail/petshop-api/internal/data"
	domainauth "github.com/Fadhail/petshop-api/internal/domain/auth"
	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/mocks"
	mockauth "github.com/Fadhail/petshop-api/internal/mocks/auth"
	"github.com/Fadhail/petshop-api/internal/ports"
)

// mockSessionStore injects store-level failures that MemorySessionStore can't produce.
type mockSessionStore struct {
	saveFunc   func(context.Context, domainauth.Session) error
	getFunc    func(context.Context, string) (domainauth.Session, error)
	deleteFunc func(context.Context, string) error
}

func (m *mockSessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sess)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, token string) (domainauth.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, token)
	}
	return domainauth.Session{}, ports.ErrSessionNotFound
}

func (m *mockSessionStore) Delete(ctx context.Context, token string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, token)
	}
	return nil
}

func newPasswordAuthService(t *testing.T) (*AuthService, *mocks.MockUserRepository, *mockauth.MemorySessionStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	sessions := mockauth.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Users:      users,
		Sessions:   sessions,
		Hasher:     mockauth.PlainHasher{},
		SessionTTL: time.Hour,
	})
	return svc, users, sessions
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, users, _ := newPasswordAuthService(t)

	users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateUserRequest) (*model.User, error) {
			assert.Equal(t, "plain:password-123", req.PasswordHash)
			assert.Equal(t, domainauth.RoleUser, req.Role)
			assert.Equal(t, "jane@example.com", req.Email)
			return &model.User{ID: "u1", Name: req.Name, Email: req.Email, Role: req.Role}, nil
		})

	user, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Jane",
		Email:    "Jane@Example.com",
		Password: "password-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, domainauth.RoleUser, user.Role)
}

func TestAuthService_Register_ValidationError(t *testing.T) {
	svc, _, _ := newPasswordAuthService(t)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "",
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)

	var fieldErrs model.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "name")
	assert.Contains(t, fieldErrs, "email")
	assert.Contains(t, fieldErrs, "password")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, users, _ := newPasswordAuthService(t)

	users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, data.ErrUserEmailExists)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "password-123",
	})
	assert.ErrorIs(t, err, data.ErrUserEmailExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, sessions := newPasswordAuthService(t)

	users.EXPECT().
		GetByEmail(gomock.Any(), "jane@example.com").
		Return(&model.User{
			ID:           "u1",
			Name:         "Jane",
			Email:        "jane@example.com",
			PasswordHash: "plain:password-123",
			Role:         domainauth.RoleUser,
		}, nil)

	result, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "jane@example.com",
		Password: "password-123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Session.Token)
	assert.Equal(t, "u1", result.Session.UserID)
	assert.Equal(t, domainauth.RoleUser, result.Session.Role)
	assert.True(t, result.Session.ExpiresAt.After(time.Now()))
	assert.Equal(t, 1, sessions.Len())

	got, err := svc.GetSession(context.Background(), result.Session.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Session.UserID, got.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users, sessions := newPasswordAuthService(t)

	users.EXPECT().
		GetByEmail(gomock.Any(), "jane@example.com").
		Return(&model.User{ID: "u1", Email: "jane@example.com", PasswordHash: "plain:other"}, nil)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "jane@example.com",
		Password: "password-123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, users, _ := newPasswordAuthService(t)

	users.EXPECT().
		GetByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, data.ErrUserNotFound)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password-123",
	})
	// Unknown email and wrong password read identically to the caller.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GetSession_NotFound(t *testing.T) {
	svc, _, _ := newPasswordAuthService(t)

	_, err := svc.GetSession(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestAuthService_GetSession_EmptyToken(t *testing.T) {
	svc, _, _ := newPasswordAuthService(t)

	_, err := svc.GetSession(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestAuthService_GetSession_ExpiredIsCleanedUp(t *testing.T) {
	deleted := false
	store := &mockSessionStore{
		getFunc: func(_ context.Context, token string) (domainauth.Session, error) {
			return domainauth.Session{
				Token:     token,
				UserID:    "u1",
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil
		},
		deleteFunc: func(_ context.Context, _ string) error {
			deleted = true
			return nil
		},
	}
	svc := NewAuthService(AuthServiceOptions{Sessions: store, Hasher: mockauth.PlainHasher{}})

	_, err := svc.GetSession(context.Background(), "stale-token")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, deleted, "expired session should be removed from the store")
}

func TestAuthService_GetSession_StoreFailure(t *testing.T) {
	store := &mockSessionStore{
		getFunc: func(_ context.Context, _ string) (domainauth.Session, error) {
			return domainauth.Session{}, errors.New("redis: connection refused")
		},
	}
	svc := NewAuthService(AuthServiceOptions{Sessions: store, Hasher: mockauth.PlainHasher{}})

	_, err := svc.GetSession(context.Background(), "token")
	require.Error(t, err)
	// A store outage must not be mistaken for a missing or expired session.
	assert.NotErrorIs(t, err, ports.ErrSessionNotFound)
	assert.NotErrorIs(t, err, ErrSessionExpired)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	svc, users, sessions := newPasswordAuthService(t)

	users.EXPECT().
		GetByEmail(gomock.Any(), "jane@example.com").
		Return(&model.User{ID: "u1", Email: "jane@example.com", PasswordHash: "plain:pw-123456"}, nil)

	result, err := svc.Login(context.Background(), &model.LoginRequest{Email: "jane@example.com", Password: "pw-123456"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.Session.Token))
	assert.Equal(t, 0, sessions.Len())

	require.NoError(t, svc.Logout(context.Background(), result.Session.Token))
	require.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_SSO_DisabledWithoutProvider(t *testing.T) {
	svc, _, _ := newPasswordAuthService(t)

	_, err := svc.BeginLogin(context.Background(), "http://localhost/callback")
	assert.ErrorIs(t, err, ErrSSODisabled)

	_, err = svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	assert.ErrorIs(t, err, ErrSSODisabled)
}

func TestAuthService_SSO_BeginAndComplete(t *testing.T) {
	provider := mockauth.NewMockSSOProvider()
	provider.DefaultUser.Groups = []string{"petshop-admins"}
	sessions := mockauth.NewMemorySessionStore()

	svc := NewAuthService(AuthServiceOptions{
		Sessions: sessions,
		Provider: provider,
		Roles:    mockauth.StaticRoleMapper{AdminGroup: "petshop-admins", UserGroup: "petshop-users"},
	})

	begin, err := svc.BeginLogin(context.Background(), "http://localhost:8080/api/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", begin.AuthURL)
	assert.NotEmpty(t, begin.State)
	assert.NotEmpty(t, begin.Nonce)

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "code",
		State: begin.State,
		Nonce: begin.Nonce,
	})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, result.Session.Role)
	assert.Equal(t, "mock-user-1", result.Session.UserID)
	assert.Equal(t, 1, sessions.Len())
}

func TestAuthService_SSO_CompleteValidation(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{
		Sessions: mockauth.NewMemorySessionStore(),
		Provider: mockauth.NewMockSSOProvider(),
		Roles:    mockauth.StaticRoleMapper{},
	})

	for name, input := range map[string]CompleteLoginInput{
		"missing code":  {State: "s", Nonce: "n"},
		"missing state": {Code: "c", Nonce: "n"},
		"missing nonce": {Code: "c", State: "s"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CompleteLogin(context.Background(), input)
			assert.Error(t, err)
		})
	}
}

func TestAuthService_SSO_RoleDefaultsToUserWithoutMapper(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{
		Sessions: mockauth.NewMemorySessionStore(),
		Provider: mockauth.NewMockSSOProvider(),
	})

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleUser, result.Session.Role)
}
