package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lumedental/clinic-api/config"

	"github.com/google/uuid"
)

func testManager() *Manager {
	cfg := config.SessionConfig{
		Secret:     "test-secret",
		TTL:        time.Hour,
		CookieName: "lume_session",
	}
	return NewManager(cfg, NewMemoryTokenStore())
}

func TestIssueAndVerify(t *testing.T) {
	m := testManager()
	userID := uuid.New()

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	cookie, err := m.Issue(r, userID, "drsmith")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}

	r2 := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r2.AddCookie(cookie)

	claims, err := m.Verify(r2)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != userID || claims.Username != "drsmith" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRevokeInvalidatesSession(t *testing.T) {
	m := testManager()

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	cookie, err := m.Issue(r, uuid.New(), "drsmith")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	r2 := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	r2.AddCookie(cookie)
	claims, err := m.Verify(r2)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if err := m.Revoke(r2, claims); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	// cookie is still signed and unexpired, but the server-side entry is gone
	if _, err := m.Verify(r2); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after revoke, got %v", err)
	}
}

func TestVerifyRejectsMissingAndGarbageCookies(t *testing.T) {
	m := testManager()

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if _, err := m.Verify(r); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	r2 := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r2.AddCookie(&http.Cookie{Name: "lume_session", Value: "not-a-token"})
	if _, err := m.Verify(r2); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestClearCookieExpires(t *testing.T) {
	m := testManager()
	c := m.ClearCookie()
	if c.MaxAge != -1 || c.Value != "" {
		t.Fatalf("expected expired empty cookie, got %+v", c)
	}
}
