package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/jwt"
	"github.com/carelink/carelink-portal/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Parse(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionReader checks that a session is still live server-side.
type SessionReader interface {
	Exists(ctx context.Context, userID uuid.UUID, sessionID string) (bool, error)
}

// contextKey is an unexported type for keys in context.
type contextKey struct{ name string }

var (
	userIDKey    = contextKey{"userID"}
	sessionIDKey = contextKey{"sessionID"}
)

// AuthMiddleware validates the bearer token and rejects tokens whose
// server-side session has been logged out. The authenticated user id
// and session id are placed in the request context.
func AuthMiddleware(tokener Tokener, sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.Parse(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			live, err := sessions.Exists(ctx, claims.UserID, claims.SessionID)
			if err != nil {
				logger.Log.Errorw("session lookup failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !live {
				logger.Log.Errorw("session no longer active", "user_id", claims.UserID)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(ctx, claims.UserID, claims.SessionID)))
		})
	}
}

// ContextWithUser returns a context carrying the authenticated user id
// and session id.
func ContextWithUser(ctx context.Context, userID uuid.UUID, sessionID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// UserIDFromContext returns the authenticated user id set by
// AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// SessionIDFromContext returns the session id set by AuthMiddleware.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}
