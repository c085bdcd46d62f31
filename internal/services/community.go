package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
)

// ErrEmptyPost is returned when a post has no title or no content.
var ErrEmptyPost = errors.New("post title and content are required")

// defaultPostLimit matches the original feed page size.
const defaultPostLimit = 20

// PostReader defines read operations for community posts.
type PostReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.CommunityPost, error)
}

// PostWriter defines write operations for community posts.
type PostWriter interface {
	Save(ctx context.Context, post models.CommunityPost) error
}

// CommunityService manages the forum feed.
type CommunityService struct {
	users  UserReader
	reader PostReader
	writer PostWriter
	audit  AuditWriter
}

// NewCommunityService creates a new CommunityService instance. audit
// may be nil.
func NewCommunityService(users UserReader, reader PostReader, writer PostWriter, audit AuditWriter) *CommunityService {
	return &CommunityService{
		users:  users,
		reader: reader,
		writer: writer,
		audit:  audit,
	}
}

// CreatePost publishes a forum post under the user's display name.
// Like and comment counters start at zero.
func (svc *CommunityService) CreatePost(ctx context.Context, userID uuid.UUID, title, content, category string) (*models.CommunityPost, error) {
	if title == "" || content == "" {
		return nil, ErrEmptyPost
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get post author", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := models.CommunityPost{
		PostID:   uuid.New(),
		UserID:   userID,
		Author:   user.Name,
		Title:    title,
		Content:  content,
		Category: category,
		Date:     time.Now().Format("2006-01-02 15:04"),
		Likes:    0,
		Comments: 0,
	}

	if err := svc.writer.Save(ctx, post); err != nil {
		logger.Log.Errorw("failed to save community post", "user_id", userID, "err", err)
		return nil, err
	}

	writeAudit(ctx, svc.audit, userID.String(), "community_post", post.PostID.String(), "created")

	return &post, nil
}

// ListRecentPosts returns the newest posts first. A non-positive
// limit falls back to the default feed size.
func (svc *CommunityService) ListRecentPosts(ctx context.Context, limit int) ([]models.CommunityPost, error) {
	if limit <= 0 {
		limit = defaultPostLimit
	}

	posts, err := svc.reader.ListRecent(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to list community posts", "err", err)
		return nil, err
	}
	return posts, nil
}
