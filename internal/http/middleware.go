package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/Fadhail/petshop-api/internal/domain/auth"
	"github.com/Fadhail/petshop-api/internal/ports"
	"github.com/Fadhail/petshop-api/internal/service"
)

// SessionResolver is the slice of the auth service the middleware needs.
type SessionResolver interface {
	GetSession(ctx context.Context, token string) (*domainauth.Session, error)
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// browserRequestKey is an unexported context key type for browser request detection.
type browserRequestKey struct{}

// BrowserDetection returns a middleware that detects browser requests vs API requests.
// It sets a context value used downstream to decide between redirects and JSON errors.
func BrowserDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isBrowser := isBrowserRequest(r)
			ctx := context.WithValue(r.Context(), browserRequestKey{}, isBrowser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsBrowserRequest returns true if the current request is from a browser.
func IsBrowserRequest(r *http.Request) bool {
	if val := r.Context().Value(browserRequestKey{}); val != nil {
		if isBrowser, ok := val.(bool); ok {
			return isBrowser
		}
	}
	// Fallback to direct detection if middleware wasn't used
	return isBrowserRequest(r)
}

// isBrowserRequest determines if a request is from a browser based on:
// 1. Path prefix - API routes under /api/ are never browser requests
// 2. Accept header - browsers typically accept text/html.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}

	accept := r.Header.Get("Accept")
	if accept == "" {
		// No Accept header, assume browser for non-API routes
		return true
	}
	return strings.Contains(accept, "text/html")
}

// sessionState is the middleware's resolution of the request credential.
type sessionState struct {
	session  *domainauth.Session
	snapshot domainauth.Snapshot
	// fromCookie records whether the credential came from the session cookie,
	// so a rejected credential clears it and the client stops replaying it.
	fromCookie bool
	rejected   bool
}

// resolveSession turns the request credential into a guard snapshot.
// A store failure that is not "no session" resolves to the loading snapshot:
// the caller may be legitimately authenticated and must not be bounced to login.
func resolveSession(r *http.Request, auth SessionResolver) sessionState {
	token, fromCookie := requestToken(r)
	if token == "" {
		return sessionState{snapshot: domainauth.SnapshotOf(nil)}
	}

	session, err := auth.GetSession(r.Context(), token)
	switch {
	case err == nil:
		return sessionState{
			session:    session,
			snapshot:   domainauth.SnapshotOf(session),
			fromCookie: fromCookie,
		}
	case errors.Is(err, ports.ErrSessionNotFound), errors.Is(err, service.ErrSessionExpired):
		return sessionState{
			snapshot:   domainauth.SnapshotOf(nil),
			fromCookie: fromCookie,
			rejected:   true,
		}
	default:
		return sessionState{snapshot: domainauth.LoadingSnapshot(), fromCookie: fromCookie}
	}
}

// requestToken extracts the session credential, preferring the Authorization
// header over the cookie fallback.
func requestToken(r *http.Request) (token string, fromCookie bool) {
	if h := r.Header.Get("Authorization"); h != "" {
		const prefix = "Bearer "
		if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
			return strings.TrimSpace(h[len(prefix):]), false
		}
	}
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value, true
	}
	return "", false
}

// Guard returns a middleware enforcing one capability on the wrapped routes.
// The decision table lives in the domain package; this layer only translates
// decisions into HTTP: JSON errors for API calls, redirects for browsers.
func Guard(auth SessionResolver, capability domainauth.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := resolveSession(r, auth)
			if state.rejected && state.fromCookie {
				// The client holds a dead credential; clear it before answering
				// so the next request arrives anonymous instead of looping.
				ClearSessionCookie(w, r, "")
			}

			switch decision := domainauth.Decide(state.snapshot, capability); decision {
			case domainauth.DecisionAllow:
				next.ServeHTTP(w, r.WithContext(SetSessionInContext(r.Context(), state.session)))

			case domainauth.DecisionPlaceholder:
				// Session store unreachable: neither allow nor redirect is safe.
				WriteError(w, ErrorParams{
					Code:    http.StatusServiceUnavailable,
					ErrCode: "session_unresolved",
					Err:     errors.New("session could not be resolved, try again"),
				})

			case domainauth.DecisionRedirectLogin:
				if IsBrowserRequest(r) {
					redirectToLogin(w, r)
					return
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})

			case domainauth.DecisionRedirectAdminHome, domainauth.DecisionRedirectUserDashboard:
				if IsBrowserRequest(r) {
					target := "/dashboard"
					if decision == domainauth.DecisionRedirectAdminHome {
						target = "/admin"
					}
					http.Redirect(w, r, target, http.StatusSeeOther)
					return
				}
				errCode := "insufficient_permissions"
				if capability == domainauth.CapabilityPublicOnly {
					errCode = "already_authenticated"
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: errCode,
					Err:     errors.New("not permitted for this account"),
				})
			}
		})
	}
}

// OptionalSession returns a middleware that attaches a session to the context
// when one resolves, without gating the route. Store failures and dead
// credentials degrade to anonymous here; public routes stay available.
func OptionalSession(auth SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := resolveSession(r, auth)
			if state.session != nil {
				r = r.WithContext(SetSessionInContext(r.Context(), state.session))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// redirectToLogin redirects browser requests to the login page with the current URL as redirect_uri.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectPath := safeRedirectPath(r.URL.RequestURI())
	loginURL := "/login?redirect_uri=" + url.QueryEscape(redirectPath)
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
