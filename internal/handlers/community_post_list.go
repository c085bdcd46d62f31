package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
)

// PostLister defines the interface that the community service must
// implement.
type PostLister interface {
	ListRecentPosts(ctx context.Context, limit int) ([]models.CommunityPost, error)
}

// NewListPostsHandler returns an HTTP handler for reading the
// community feed, newest first.
// @Summary List community posts
// @Description Returns the most recent posts, newest first
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of posts" default(20)
// @Success 200 {array} models.CommunityPost "Posts returned"
// @Failure 401 "Missing or invalid token"
// @Router /community/posts [get]
func NewListPostsHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		posts, err := svc.ListRecentPosts(r.Context(), limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: msgTryAgain})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(posts)
	}
}
