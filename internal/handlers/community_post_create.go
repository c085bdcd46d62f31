package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/middlewares"
	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/services"
)

// PostCreator defines the interface that the community service must
// implement.
type PostCreator interface {
	CreatePost(ctx context.Context, userID uuid.UUID, title, content, category string) (*models.CommunityPost, error)
}

// CreatePostRequest represents the JSON body for publishing a
// community post
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// Post title
	// required: true
	// default: My recovery story
	Title string `json:"title"`

	// Post body
	// required: true
	Content string `json:"content"`

	// Topic category
	// default: General
	Category string `json:"category"`
}

// NewCreatePostHandler returns an HTTP handler that publishes a
// community post authored by the authenticated user.
// @Summary Create community post
// @Description Publishes a post under the authenticated user's name
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createPostRequest body handlers.CreatePostRequest true "Post content"
// @Success 201 {object} models.CommunityPost "Post created"
// @Failure 400 {object} handlers.ErrorResponse "Empty post / invalid request"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /community/posts [post]
func NewCreatePostHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		post, err := svc.CreatePost(r.Context(), userID, req.Title, req.Content, req.Category)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyPost):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: msgTryAgain})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(post)
	}
}
