package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/services"
)

func TestCommunityService_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockReader := services.NewMockPostReader(ctrl)
	mockWriter := services.NewMockPostWriter(ctrl)

	svc := services.NewCommunityService(mockUsers, mockReader, mockWriter, nil)

	userID := uuid.New()

	t.Run("successful post", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.User{UserID: userID, Name: "Alice"}, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, post models.CommunityPost) error {
				assert.Equal(t, "Alice", post.Author)
				assert.Zero(t, post.Likes)
				assert.Zero(t, post.Comments)
				return nil
			})

		post, err := svc.CreatePost(context.Background(), userID, "My recovery story", "It went well", "General")
		assert.NoError(t, err)
		assert.Equal(t, "Alice", post.Author)
		assert.NotEmpty(t, post.Date)
	})

	t.Run("missing title", func(t *testing.T) {
		post, err := svc.CreatePost(context.Background(), userID, "", "content", "General")
		assert.ErrorIs(t, err, services.ErrEmptyPost)
		assert.Nil(t, post)
	})

	t.Run("missing content", func(t *testing.T) {
		post, err := svc.CreatePost(context.Background(), userID, "title", "", "General")
		assert.ErrorIs(t, err, services.ErrEmptyPost)
		assert.Nil(t, post)
	})

	t.Run("author not found", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		post, err := svc.CreatePost(context.Background(), userID, "title", "content", "General")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, post)
	})

	t.Run("writer error", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.User{UserID: userID, Name: "Alice"}, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(errors.New("write error"))

		post, err := svc.CreatePost(context.Background(), userID, "title", "content", "General")
		assert.EqualError(t, err, "write error")
		assert.Nil(t, post)
	})
}

func TestCommunityService_ListRecentPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockReader := services.NewMockPostReader(ctrl)
	mockWriter := services.NewMockPostWriter(ctrl)

	svc := services.NewCommunityService(mockUsers, mockReader, mockWriter, nil)

	posts := []models.CommunityPost{
		{PostID: uuid.New(), Title: "Newest", Date: "2024-01-15 10:00"},
		{PostID: uuid.New(), Title: "Older", Date: "2024-01-14 09:00"},
	}

	t.Run("explicit limit", func(t *testing.T) {
		mockReader.EXPECT().
			ListRecent(gomock.Any(), 5).
			Return(posts, nil)

		got, err := svc.ListRecentPosts(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("non-positive limit uses default", func(t *testing.T) {
		mockReader.EXPECT().
			ListRecent(gomock.Any(), 20).
			Return(posts, nil)

		got, err := svc.ListRecentPosts(context.Background(), 0)
		assert.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			ListRecent(gomock.Any(), 20).
			Return(nil, errors.New("read error"))

		got, err := svc.ListRecentPosts(context.Background(), -1)
		assert.EqualError(t, err, "read error")
		assert.Nil(t, got)
	})
}
