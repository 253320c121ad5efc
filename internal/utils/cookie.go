package utils

import (
	"net/http"
	"time"
)

// SessionCookieName is the name of the cookie carrying the session token.
const SessionCookieName = "session"

// SetSessionCookie writes the session token cookie. The cookie is HttpOnly,
// SameSite=Lax, scoped to the whole site and lives as long as the token.
// secure should be true everywhere except local development over plain HTTP.
func SetSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionTokenFromRequest returns the session token carried by r, preferring
// the session cookie over an "Authorization: Bearer" header. ok is false when
// neither is present.
func SessionTokenFromRequest(r *http.Request) (token string, ok bool) {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value, true
	}
	if h := r.Header.Get("Authorization"); h != "" {
		if t, err := ParseBearerToken(h); err == nil {
			return t, true
		}
	}
	return "", false
}
