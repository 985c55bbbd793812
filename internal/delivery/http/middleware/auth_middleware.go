package middleware

import (
	"context"
	"net/http"

	"github.com/lumedental/clinic-api/pkg/response"
	"github.com/lumedental/clinic-api/pkg/session"
)

type contextKey string

const SessionKey contextKey = "session"

type AuthMiddleware struct {
	sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate requires a valid, non-revoked session cookie. The failure
// message is the same for every reason (missing, expired, revoked).
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.sessions.Verify(r)
		if err != nil {
			response.Unauthorized(w, "Not authenticated")
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionFromContext extracts the verified session claims from context
func GetSessionFromContext(ctx context.Context) (*session.Claims, bool) {
	claims, ok := ctx.Value(SessionKey).(*session.Claims)
	return claims, ok
}
