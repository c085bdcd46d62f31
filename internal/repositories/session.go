package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/carelink/carelink-portal/internal/logger"
)

// SessionRepository is the server-side session registry in Redis.
// Login and register create a session keyed by user id and token id;
// logout deletes it; the auth middleware rejects tokens whose session
// is gone. Keys expire together with the token.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a session registry with the given TTL.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(userID uuid.UUID, sessionID string) string {
	return fmt.Sprintf("session:%s:%s", userID, sessionID)
}

// Create registers a live session.
func (r *SessionRepository) Create(ctx context.Context, userID uuid.UUID, sessionID string) error {
	key := sessionKey(userID, sessionID)
	err := r.client.Set(ctx, key, "1", r.ttl).Err()

	logger.Log.Infow("session created",
		"key", key,
		"error", err,
	)
	return err
}

// Exists reports whether the session is still live.
func (r *SessionRepository) Exists(ctx context.Context, userID uuid.UUID, sessionID string) (bool, error) {
	key := sessionKey(userID, sessionID)

	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("session lookup failed",
			"key", key,
			"error", err,
		)
		return false, err
	}
	return n > 0, nil
}

// Delete invalidates the session. Deleting an absent session is not
// an error.
func (r *SessionRepository) Delete(ctx context.Context, userID uuid.UUID, sessionID string) error {
	key := sessionKey(userID, sessionID)

	err := r.client.Del(ctx, key).Err()
	if err != nil && err != redis.Nil {
		logger.Log.Errorw("session delete failed",
			"key", key,
			"error", err,
		)
		return err
	}

	logger.Log.Infow("session deleted", "key", key)
	return nil
}
