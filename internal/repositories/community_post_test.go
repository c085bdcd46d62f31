package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/carelink-portal/internal/models"
)

func TestCommunityPostRepository_ListRecent(t *testing.T) {
	tables := setupTables(t)
	reader := NewCommunityPostReadRepository(tables.CommunityPosts)
	writer := NewCommunityPostWriteRepository(tables.CommunityPosts)

	ctx := context.Background()
	for _, post := range []models.CommunityPost{
		{PostID: uuid.New(), UserID: uuid.New(), Author: "Alice", Title: "first", Date: "2024-01-10"},
		{PostID: uuid.New(), UserID: uuid.New(), Author: "Bob", Title: "second", Date: "2024-01-20"},
		{PostID: uuid.New(), UserID: uuid.New(), Author: "Carol", Title: "third", Date: "2024-01-20"},
		{PostID: uuid.New(), UserID: uuid.New(), Author: "Dave", Title: "fourth", Date: "2024-01-15"},
	} {
		require.NoError(t, writer.Save(ctx, post))
	}

	t.Run("newest first, ties latest-posted on top", func(t *testing.T) {
		posts, err := reader.ListRecent(ctx, 0)
		require.NoError(t, err)
		require.Len(t, posts, 4)

		assert.Equal(t, "third", posts[0].Title)
		assert.Equal(t, "second", posts[1].Title)
		assert.Equal(t, "fourth", posts[2].Title)
		assert.Equal(t, "first", posts[3].Title)
	})

	t.Run("limit slices the feed", func(t *testing.T) {
		posts, err := reader.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "third", posts[0].Title)
		assert.Equal(t, "second", posts[1].Title)
	})
}

func TestCommunityPostRepository_SaveRoundTrip(t *testing.T) {
	tables := setupTables(t)
	reader := NewCommunityPostReadRepository(tables.CommunityPosts)
	writer := NewCommunityPostWriteRepository(tables.CommunityPosts)

	ctx := context.Background()
	post := models.CommunityPost{
		PostID:   uuid.New(),
		UserID:   uuid.New(),
		Author:   "Alice",
		Title:    "Managing blood pressure",
		Content:  "What worked for me,\nin two lines.",
		Category: "Heart Health",
		Date:     "2024-01-15",
		Likes:    4,
		Comments: 2,
	}
	require.NoError(t, writer.Save(ctx, post))

	posts, err := reader.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post, posts[0])
}
