// Package sessioncookie centralizes the site session cookie behavior.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Name is the canonical site session cookie name.
const Name = "site_session"

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie for the current request context.
func Write(w http.ResponseWriter, r *http.Request, sessionID string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// Ensure returns the request's browser session id, minting and writing a
// new one when the cookie is absent or not a valid UUID. The bool reports
// whether the id was newly created.
func Ensure(w http.ResponseWriter, r *http.Request) (string, bool, error) {
	if existing, ok := Read(r); ok {
		if _, err := uuid.Parse(existing); err == nil {
			return existing, false, nil
		}
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", false, err
	}
	sessionID := id.String()
	Write(w, r, sessionID)
	return sessionID, true, nil
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}
