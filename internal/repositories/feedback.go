package repositories

import (
	"context"
	"strconv"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/storage"
)

// FeedbackWriteRepository appends feedback rows. Feedback is
// write-only in the portal; nothing reads it back.
type FeedbackWriteRepository struct {
	table *storage.Table
}

func NewFeedbackWriteRepository(table *storage.Table) *FeedbackWriteRepository {
	return &FeedbackWriteRepository{table: table}
}

// Save appends one feedback row.
func (r *FeedbackWriteRepository) Save(ctx context.Context, fb models.Feedback) error {
	err := r.table.Append(storage.Row{
		"feedback_id":  fb.FeedbackID.String(),
		"user_id":      fb.UserID.String(),
		"service_type": fb.ServiceType,
		"rating":       strconv.Itoa(fb.Rating),
		"comment":      fb.Comment,
		"date":         fb.Date,
	})
	logger.Log.Infow("feedback saved",
		"feedback_id", fb.FeedbackID,
		"user_id", fb.UserID,
		"service_type", fb.ServiceType,
		"rating", fb.Rating,
		"error", err,
	)
	return err
}
