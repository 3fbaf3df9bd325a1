package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestReadReturnsTrimmedValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: " abc "})
	value, ok := Read(req)
	if !ok {
		t.Fatalf("expected cookie to be read")
	}
	if value != "abc" {
		t.Fatalf("value = %q, want %q", value, "abc")
	}
}

func TestReadMissingOrBlank(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatal("expected nil request to have no cookie")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := Read(req); ok {
		t.Fatal("expected missing cookie")
	}
	req.AddCookie(&http.Cookie{Name: Name, Value: "  "})
	if _, ok := Read(req); ok {
		t.Fatal("expected blank cookie to be ignored")
	}
}

func TestWriteSetsSecureOnHTTPS(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	rr := httptest.NewRecorder()
	Write(rr, req, "session-1")

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != Name || cookie.Value != "session-1" {
		t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
	}
	if !cookie.Secure || !cookie.HttpOnly {
		t.Fatalf("secure = %v, httpOnly = %v, want both true", cookie.Secure, cookie.HttpOnly)
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("SameSite = %v, want Lax", cookie.SameSite)
	}
}

func TestWriteHonorsForwardedProto(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	Write(rr, req, "session-1")
	if cookies := rr.Result().Cookies(); len(cookies) != 1 || !cookies[0].Secure {
		t.Fatalf("expected secure cookie behind https proxy")
	}
}

func TestEnsureMintsNewSessionID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	sessionID, created, err := Ensure(rr, httptest.NewRequest(http.MethodGet, "/presentation", nil))
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if !created {
		t.Fatal("expected new session id")
	}
	parsed, err := uuid.Parse(sessionID)
	if err != nil {
		t.Fatalf("session id %q is not a uuid: %v", sessionID, err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("uuid version = %d, want 7", parsed.Version())
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != sessionID {
		t.Fatalf("expected cookie carrying %q", sessionID)
	}
}

func TestEnsureReusesValidCookie(t *testing.T) {
	t.Parallel()

	existing := uuid.Must(uuid.NewV7()).String()
	req := httptest.NewRequest(http.MethodGet, "/presentation", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: existing})
	rr := httptest.NewRecorder()

	sessionID, created, err := Ensure(rr, req)
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if created {
		t.Fatal("expected existing session id to be reused")
	}
	if sessionID != existing {
		t.Fatalf("session id = %q, want %q", sessionID, existing)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("expected no cookie to be rewritten")
	}
}

func TestEnsureReplacesForgedCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/presentation", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: "not-a-uuid"})
	rr := httptest.NewRecorder()

	sessionID, created, err := Ensure(rr, req)
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if !created || sessionID == "not-a-uuid" {
		t.Fatalf("session id = %q created = %v, want fresh id", sessionID, created)
	}
}
