package repositories

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/storage"
)

// CommunityPostReadRepository reads forum post rows.
type CommunityPostReadRepository struct {
	table *storage.Table
}

func NewCommunityPostReadRepository(table *storage.Table) *CommunityPostReadRepository {
	return &CommunityPostReadRepository{table: table}
}

// ListRecent returns up to limit posts, newest first. Ties on the
// date field fall back to reverse insertion order, so the feed reads
// latest-posted on top.
func (r *CommunityPostReadRepository) ListRecent(ctx context.Context, limit int) ([]models.CommunityPost, error) {
	rows, err := r.table.ReadAll()
	if err != nil {
		logger.Log.Errorw("community posts read failed", "error", err)
		return nil, err
	}

	posts := make([]models.CommunityPost, 0, len(rows))
	for _, row := range rows {
		post, err := communityPostFromRow(row)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}

	// Reverse to newest-insertion-first, then stable sort by date so
	// equal dates keep that order.
	for i, j := 0, len(posts)-1; i < j; i, j = i+1, j-1 {
		posts[i], posts[j] = posts[j], posts[i]
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})

	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// CommunityPostWriteRepository appends forum post rows.
type CommunityPostWriteRepository struct {
	table *storage.Table
}

func NewCommunityPostWriteRepository(table *storage.Table) *CommunityPostWriteRepository {
	return &CommunityPostWriteRepository{table: table}
}

// Save appends one post row.
func (r *CommunityPostWriteRepository) Save(ctx context.Context, post models.CommunityPost) error {
	err := r.table.Append(storage.Row{
		"post_id":  post.PostID.String(),
		"user_id":  post.UserID.String(),
		"author":   post.Author,
		"title":    post.Title,
		"content":  post.Content,
		"category": post.Category,
		"date":     post.Date,
		"likes":    strconv.Itoa(post.Likes),
		"comments": strconv.Itoa(post.Comments),
	})
	logger.Log.Infow("community post saved",
		"post_id", post.PostID,
		"user_id", post.UserID,
		"error", err,
	)
	return err
}

func communityPostFromRow(row storage.Row) (*models.CommunityPost, error) {
	postID, err := uuid.Parse(row["post_id"])
	if err != nil {
		return nil, fmt.Errorf("malformed community post row: %w", err)
	}
	userID, err := uuid.Parse(row["user_id"])
	if err != nil {
		return nil, fmt.Errorf("malformed community post row: %w", err)
	}
	likes, _ := strconv.Atoi(row["likes"])
	comments, _ := strconv.Atoi(row["comments"])
	return &models.CommunityPost{
		PostID:   postID,
		UserID:   userID,
		Author:   row["author"],
		Title:    row["title"],
		Content:  row["content"],
		Category: row["category"],
		Date:     row["date"],
		Likes:    likes,
		Comments: comments,
	}, nil
}
