package models

import (
	"github.com/google/uuid"
)

// CommunityPost is one post in the community forum feed.
type CommunityPost struct {
	PostID   uuid.UUID `json:"post_id"`
	UserID   uuid.UUID `json:"user_id"`
	Author   string    `json:"author"` // display name at posting time
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Category string    `json:"category"`
	Date     string    `json:"date"` // YYYY-MM-DD HH:MM
	Likes    int       `json:"likes"`
	Comments int       `json:"comments"`
}
