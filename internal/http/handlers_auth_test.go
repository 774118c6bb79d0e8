package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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
	"github.com/Fadhail/petshop-api/internal/service"
)

type authTestEnv struct {
	router   http.Handler
	users    *mocks.MockUserRepository
	sessions *mockauth.MemorySessionStore
	auth     *service.AuthService
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	sessions := mockauth.NewMemorySessionStore()
	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Users:      users,
		Sessions:   sessions,
		Hasher:     mockauth.PlainHasher{},
		SessionTTL: time.Hour,
	})
	router := NewRouter(RouterServices{Auth: authSvc})
	return &authTestEnv{router: router, users: users, sessions: sessions, auth: authSvc}
}

func (e *authTestEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandlers_Register(t *testing.T) {
	env := newAuthTestEnv(t)

	env.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateUserRequest) (*model.User, error) {
			return &model.User{ID: "u1", Name: req.Name, Email: req.Email, Role: req.Role}, nil
		})

	rec := env.do(jsonRequest(http.MethodPost, "/api/auth/register",
		`{"name":"Jane","email":"jane@example.com","password":"password-123"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, domainauth.RoleUser, user.Role)
}

func TestAuthHandlers_Register_FieldErrors(t *testing.T) {
	env := newAuthTestEnv(t)

	rec := env.do(jsonRequest(http.MethodPost, "/api/auth/register",
		`{"name":"","email":"nope","password":"short"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_failed", body.Error)
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "password")
}

func TestAuthHandlers_Register_DuplicateEmail(t *testing.T) {
	env := newAuthTestEnv(t)

	env.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, data.ErrUserEmailExists)

	rec := env.do(jsonRequest(http.MethodPost, "/api/auth/register",
		`{"name":"Jane","email":"jane@example.com","password":"password-123"}`))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email_exists", errCodeOf(t, rec))
}

func TestAuthHandlers_LoginSetsCookieAndToken(t *testing.T) {
	env := newAuthTestEnv(t)

	env.users.EXPECT().
		GetByEmail(gomock.Any(), "jane@example.com").
		Return(&model.User{
			ID:           "u1",
			Name:         "Jane",
			Email:        "jane@example.com",
			PasswordHash: "plain:password-123",
			Role:         domainauth.RoleUser,
		}, nil)

	rec := env.do(jsonRequest(http.MethodPost, "/api/auth/login",
		`{"email":"jane@example.com","password":"password-123"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "u1", body.User.ID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, body.Token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandlers_Login_InvalidCredentials(t *testing.T) {
	env := newAuthTestEnv(t)

	env.users.EXPECT().
		GetByEmail(gomock.Any(), "jane@example.com").
		Return(nil, data.ErrUserNotFound)

	rec := env.do(jsonRequest(http.MethodPost, "/api/auth/login",
		`{"email":"jane@example.com","password":"wrong-password"}`))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_credentials", errCodeOf(t, rec))
}

func TestAuthHandlers_MeAndLogout(t *testing.T) {
	env := newAuthTestEnv(t)

	sess := domainauth.Session{
		Token:     "tok-1",
		UserID:    "u1",
		Name:      "Jane",
		Email:     "jane@example.com",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, env.sessions.Save(context.Background(), sess))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := env.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		User struct {
			ID   string              `json:"id"`
			Role domainauth.Role     `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "u1", me.User.ID)
	assert.Equal(t, domainauth.RoleUser, me.User.Role)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec = env.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.sessions.Len())

	// The token no longer resolves.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec = env.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlers_LoginWhileAuthenticated(t *testing.T) {
	env := newAuthTestEnv(t)

	sess := domainauth.Session{
		Token:     "tok-1",
		UserID:    "u1",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, env.sessions.Save(context.Background(), sess))

	req := jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"a@b.co","password":"pw"}`)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := env.do(req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "already_authenticated", errCodeOf(t, rec))
}

func TestAuthHandlers_SSODisabled(t *testing.T) {
	env := newAuthTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/auth/sso/login", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "sso_disabled", errCodeOf(t, rec))
}

func TestHealthz(t *testing.T) {
	env := newAuthTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
