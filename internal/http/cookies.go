package httpx

import (
	"net/http"
	"strings"
	"time"

	domainauth "github.com/Fadhail/petshop-api/internal/domain/auth"
)

// SessionCookieName is the browser-fallback credential cookie. API clients
// send the same token in the Authorization header instead.
const SessionCookieName = "session_id"

// requestIsSecure reports whether the request arrived over TLS, directly or
// behind a terminating proxy.
func requestIsSecure(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// SetSessionCookie writes the session cookie with an expiry matching the session's.
func SetSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session, cookieDomain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.Token,
		Path:     "/",
		Domain:   cookieDomain,
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// ClearSessionCookie expires the session cookie on the client.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting
// the cookie to maximize compatibility across browsers during deletion.
func ClearSessionCookie(w http.ResponseWriter, r *http.Request, cookieDomain string) {
	clearCookie(w, r, SessionCookieName, cookieDomain)
}

func clearCookie(w http.ResponseWriter, r *http.Request, name, cookieDomain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   cookieDomain,
		HttpOnly: true,
		Secure:   requestIsSecure(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
