// Package session implements cookie-based sessions for the doctor dashboard.
// The cookie carries a signed HS256 token; the token's session ID must also
// be present in the TokenStore, which gives the server the ability to revoke
// a session at logout.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lumedental/clinic-api/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNoSession      = errors.New("no session cookie")
	ErrInvalidSession = errors.New("invalid or expired session")
)

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	SessionID string    `json:"session_id"`
	jwt.RegisteredClaims
}

type Manager struct {
	cfg   config.SessionConfig
	store TokenStore
}

func NewManager(cfg config.SessionConfig, store TokenStore) *Manager {
	return &Manager{cfg: cfg, store: store}
}

func (m *Manager) storeKey(userID uuid.UUID, sessionID string) string {
	return fmt.Sprintf("session:%s:%s", userID.String(), sessionID)
}

// Issue creates a new session for the user and returns the cookie to set.
func (m *Manager) Issue(r *http.Request, userID uuid.UUID, username string) (*http.Cookie, error) {
	sessionID := uuid.New().String()
	now := time.Now()

	claims := Claims{
		UserID:    userID,
		Username:  username,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return nil, err
	}

	if err := m.store.Save(r.Context(), m.storeKey(userID, sessionID), m.cfg.TTL); err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.cfg.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.cfg.Secure,
	}, nil
}

// Verify parses the session cookie and checks the session is still live.
func (m *Manager) Verify(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	exists, err := m.store.Exists(r.Context(), m.storeKey(claims.UserID, claims.SessionID))
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrInvalidSession
	}

	return claims, nil
}

// Revoke deletes the server-side session entry.
func (m *Manager) Revoke(r *http.Request, claims *Claims) error {
	return m.store.Delete(r.Context(), m.storeKey(claims.UserID, claims.SessionID))
}

// ClearCookie returns an expired cookie that removes the session cookie
// from the client.
func (m *Manager) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.cfg.Secure,
	}
}
