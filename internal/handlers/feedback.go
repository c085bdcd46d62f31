package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/middlewares"
	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/services"
)

// FeedbackAdder defines the interface that the feedback service must
// implement.
type FeedbackAdder interface {
	AddFeedback(ctx context.Context, fb models.Feedback) (*models.Feedback, error)
}

// AddFeedbackRequest represents the JSON body for submitting feedback
// swagger:model AddFeedbackRequest
type AddFeedbackRequest struct {
	// Service being rated
	// required: true
	// default: Appointments
	ServiceType string `json:"service_type"`

	// Rating from 1 to 5
	// required: true
	// default: 5
	Rating int `json:"rating"`

	// Free-text comment
	Comment string `json:"comment"`
}

// NewAddFeedbackHandler returns an HTTP handler for submitting a
// service rating from the authenticated user.
// @Summary Submit feedback
// @Description Stores a 1-5 rating for a portal service
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param addFeedbackRequest body handlers.AddFeedbackRequest true "Feedback"
// @Success 201 {object} models.Feedback "Feedback stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid rating / missing service type"
// @Failure 401 "Missing or invalid token"
// @Router /feedback [post]
func NewAddFeedbackHandler(svc FeedbackAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req AddFeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		fb, err := svc.AddFeedback(r.Context(), models.Feedback{
			UserID:      userID,
			ServiceType: req.ServiceType,
			Rating:      req.Rating,
			Comment:     req.Comment,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRating), errors.Is(err, services.ErrMissingServiceType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: msgTryAgain})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(fb)
	}
}
