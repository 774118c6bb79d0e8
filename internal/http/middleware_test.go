package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/Fadhail/petshop-api/internal/domain/auth"
	"github.com/Fadhail/petshop-api/internal/ports"
)

// stubResolver is a func-field session resolver for guard tests.
type stubResolver struct {
	getFunc func(ctx context.Context, token string) (*domainauth.Session, error)
}

func (s *stubResolver) GetSession(ctx context.Context, token string) (*domainauth.Session, error) {
	if s.getFunc != nil {
		return s.getFunc(ctx, token)
	}
	return nil, ports.ErrSessionNotFound
}

func resolverFor(sessions map[string]*domainauth.Session) *stubResolver {
	return &stubResolver{
		getFunc: func(_ context.Context, token string) (*domainauth.Session, error) {
			if sess, ok := sessions[token]; ok {
				return sess, nil
			}
			return nil, ports.ErrSessionNotFound
		},
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func testSessions() map[string]*domainauth.Session {
	expiry := time.Now().Add(time.Hour)
	return map[string]*domainauth.Session{
		"admin-token": {Token: "admin-token", UserID: "a1", Role: domainauth.RoleAdmin, ExpiresAt: expiry},
		"user-token":  {Token: "user-token", UserID: "u1", Role: domainauth.RoleUser, ExpiresAt: expiry},
	}
}

func doGuarded(t *testing.T, capability domainauth.Capability, configure func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	guard := Guard(resolverFor(testSessions()), capability)
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()
	guard(okHandler()).ServeHTTP(rec, req)
	return rec
}

func errCodeOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestGuard_AnonymousOnProtectedAPI(t *testing.T) {
	rec := doGuarded(t, domainauth.CapabilityAnyAuthenticated, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication_required", errCodeOf(t, rec))
}

func TestGuard_AnonymousBrowserRedirectsToLogin(t *testing.T) {
	guard := Guard(resolverFor(testSessions()), domainauth.CapabilityAnyAuthenticated)
	req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=pets", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	guard(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fdashboard%3Ftab%3Dpets", rec.Header().Get("Location"))
}

func TestGuard_UserOnAdminRoute(t *testing.T) {
	rec := doGuarded(t, domainauth.CapabilityAdminOnly, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer user-token")
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "insufficient_permissions", errCodeOf(t, rec))
}

func TestGuard_AdminAllowedAndSessionAttached(t *testing.T) {
	guard := Guard(resolverFor(testSessions()), domainauth.CapabilityAdminOnly)
	var attached *domainauth.Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attached = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	guard(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, attached)
	assert.Equal(t, "a1", attached.UserID)
}

func TestGuard_PublicOnlyRejectsAuthenticated(t *testing.T) {
	rec := doGuarded(t, domainauth.CapabilityPublicOnly, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer user-token")
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "already_authenticated", errCodeOf(t, rec))
}

func TestGuard_PublicOnlyBrowserRedirectsByRole(t *testing.T) {
	for token, wantLocation := range map[string]string{
		"admin-token": "/admin",
		"user-token":  "/dashboard",
	} {
		guard := Guard(resolverFor(testSessions()), domainauth.CapabilityPublicOnly)
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.Header.Set("Accept", "text/html")
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		guard(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code, token)
		assert.Equal(t, wantLocation, rec.Header().Get("Location"), token)
	}
}

func TestGuard_StoreFailureIs503(t *testing.T) {
	resolver := &stubResolver{
		getFunc: func(_ context.Context, _ string) (*domainauth.Session, error) {
			return nil, errors.New("redis: connection refused")
		},
	}
	guard := Guard(resolver, domainauth.CapabilityAnyAuthenticated)
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	guard(okHandler()).ServeHTTP(rec, req)

	// An unresolved session must not be treated as anonymous.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "session_unresolved", errCodeOf(t, rec))
}

func TestGuard_DeadCookieIsCleared(t *testing.T) {
	guard := Guard(resolverFor(testSessions()), domainauth.CapabilityAnyAuthenticated)
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-token"})
	rec := httptest.NewRecorder()
	guard(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestGuard_BearerTokenNotClearedAsCookie(t *testing.T) {
	rec := doGuarded(t, domainauth.CapabilityAnyAuthenticated, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer stale-token")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestOptionalSession(t *testing.T) {
	optional := OptionalSession(resolverFor(testSessions()))
	var attached *domainauth.Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attached = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	// Anonymous request passes through without a session.
	rec := httptest.NewRecorder()
	optional(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pets", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, attached)

	// Valid token attaches the session.
	req := httptest.NewRequest(http.MethodGet, "/api/pets", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec = httptest.NewRecorder()
	optional(inner).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, attached)
	assert.Equal(t, "u1", attached.UserID)
}

func TestIsBrowserRequest(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		accept string
		want   bool
	}{
		{"api path", "/api/pets", "text/html", false},
		{"html accept", "/dashboard", "text/html,application/xhtml+xml", true},
		{"json accept", "/dashboard", "application/json", false},
		{"no accept header", "/dashboard", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, isBrowserRequest(req))
		})
	}
}

func TestRequestToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})

	// The header wins over the cookie.
	token, fromCookie := requestToken(req)
	assert.Equal(t, "abc", token)
	assert.False(t, fromCookie)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})
	token, fromCookie = requestToken(req)
	assert.Equal(t, "from-cookie", token)
	assert.True(t, fromCookie)

	token, _ = requestToken(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, token)
}
