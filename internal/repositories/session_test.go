package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessions(t *testing.T, ttl time.Duration) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionRepository(client, ttl), mr
}

func TestSessionRepository_CreateAndExists(t *testing.T) {
	repo, mr := setupSessions(t, time.Hour)

	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, userID, "session123"))

	key := fmt.Sprintf("session:%s:%s", userID, "session123")
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))

	ok, err := repo.Exists(ctx, userID, "session123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, userID, "other-session")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRepository_Expiry(t *testing.T) {
	repo, mr := setupSessions(t, time.Minute)

	ctx := context.Background()
	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, userID, "session123"))

	mr.FastForward(2 * time.Minute)

	ok, err := repo.Exists(ctx, userID, "session123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo, _ := setupSessions(t, time.Hour)

	ctx := context.Background()
	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, userID, "session123"))

	require.NoError(t, repo.Delete(ctx, userID, "session123"))

	ok, err := repo.Exists(ctx, userID, "session123")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting again is fine
	assert.NoError(t, repo.Delete(ctx, userID, "session123"))
}
