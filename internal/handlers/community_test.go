package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/services"
)

func TestCreatePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockPostCreator(ctrl)
		mockSvc.EXPECT().
			CreatePost(gomock.Any(), userID, "My recovery story", "It went well", "General").
			Return(&models.CommunityPost{
				PostID:  uuid.New(),
				UserID:  userID,
				Author:  "Jane Doe",
				Title:   "My recovery story",
				Content: "It went well",
			}, nil)

		body, _ := json.Marshal(CreatePostRequest{
			Title:    "My recovery story",
			Content:  "It went well",
			Category: "General",
		})
		rec := httptest.NewRecorder()
		NewCreatePostHandler(mockSvc).ServeHTTP(rec, authedRequest(http.MethodPost, "/community/posts", body, userID))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var post models.CommunityPost
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&post))
		assert.Equal(t, "Jane Doe", post.Author)
	})

	t.Run("empty post", func(t *testing.T) {
		mockSvc := NewMockPostCreator(ctrl)
		mockSvc.EXPECT().
			CreatePost(gomock.Any(), userID, "", "", "").
			Return(nil, services.ErrEmptyPost)

		body, _ := json.Marshal(CreatePostRequest{})
		rec := httptest.NewRecorder()
		NewCreatePostHandler(mockSvc).ServeHTTP(rec, authedRequest(http.MethodPost, "/community/posts", body, userID))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("author not found", func(t *testing.T) {
		mockSvc := NewMockPostCreator(ctrl)
		mockSvc.EXPECT().
			CreatePost(gomock.Any(), userID, "title", "content", "").
			Return(nil, services.ErrUserNotFound)

		body, _ := json.Marshal(CreatePostRequest{Title: "title", Content: "content"})
		rec := httptest.NewRecorder()
		NewCreatePostHandler(mockSvc).ServeHTTP(rec, authedRequest(http.MethodPost, "/community/posts", body, userID))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListPostsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("default limit", func(t *testing.T) {
		mockSvc := NewMockPostLister(ctrl)
		mockSvc.EXPECT().
			ListRecentPosts(gomock.Any(), 0).
			Return([]models.CommunityPost{
				{PostID: uuid.New(), Title: "Newest"},
			}, nil)

		rec := httptest.NewRecorder()
		NewListPostsHandler(mockSvc).ServeHTTP(rec, authedRequest(http.MethodGet, "/community/posts", nil, userID))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("explicit limit", func(t *testing.T) {
		mockSvc := NewMockPostLister(ctrl)
		mockSvc.EXPECT().
			ListRecentPosts(gomock.Any(), 5).
			Return([]models.CommunityPost{}, nil)

		rec := httptest.NewRecorder()
		NewListPostsHandler(mockSvc).ServeHTTP(rec, authedRequest(http.MethodGet, "/community/posts?limit=5", nil, userID))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
