package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
)

// Error variables
var (
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrMissingServiceType = errors.New("service type is required")
)

// FeedbackWriter defines write operations for feedback.
type FeedbackWriter interface {
	Save(ctx context.Context, fb models.Feedback) error
}

// FeedbackService records service ratings.
type FeedbackService struct {
	writer FeedbackWriter
	audit  AuditWriter
}

// NewFeedbackService creates a new FeedbackService instance. audit
// may be nil.
func NewFeedbackService(writer FeedbackWriter, audit AuditWriter) *FeedbackService {
	return &FeedbackService{
		writer: writer,
		audit:  audit,
	}
}

// AddFeedback persists one rating for fb.UserID.
func (svc *FeedbackService) AddFeedback(ctx context.Context, fb models.Feedback) (*models.Feedback, error) {
	if fb.ServiceType == "" {
		return nil, ErrMissingServiceType
	}
	if fb.Rating < 1 || fb.Rating > 5 {
		return nil, ErrInvalidRating
	}

	fb.FeedbackID = uuid.New()
	fb.Date = time.Now().Format("2006-01-02")

	if err := svc.writer.Save(ctx, fb); err != nil {
		logger.Log.Errorw("failed to save feedback", "user_id", fb.UserID, "err", err)
		return nil, err
	}

	writeAudit(ctx, svc.audit, fb.UserID.String(), "feedback", fb.FeedbackID.String(), "created")

	return &fb, nil
}
