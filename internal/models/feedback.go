package models

import (
	"github.com/google/uuid"
)

// Feedback is a service rating left by a user.
type Feedback struct {
	FeedbackID  uuid.UUID `json:"feedback_id"`
	UserID      uuid.UUID `json:"user_id"`
	ServiceType string    `json:"service_type"` // rated service, e.g. Virtual Consultation
	Rating      int       `json:"rating"`       // 1..5
	Comment     string    `json:"comment"`
	Date        string    `json:"date"` // YYYY-MM-DD
}
