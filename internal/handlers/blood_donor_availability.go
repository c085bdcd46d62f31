package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/middlewares"
	"github.com/carelink/carelink-portal/internal/services"
)

// AvailabilityUpdater defines the interface that the donor service
// must implement.
type AvailabilityUpdater interface {
	SetDonorAvailability(ctx context.Context, userID uuid.UUID, available bool) error
}

// SetAvailabilityRequest represents the JSON body for toggling donor
// availability
// swagger:model SetAvailabilityRequest
type SetAvailabilityRequest struct {
	// Whether the donor can currently donate
	// default: false
	Available bool `json:"available"`
}

// SetAvailabilityResponse represents a successful availability update
// swagger:model SetAvailabilityResponse
type SetAvailabilityResponse struct {
	// Success message
	// default: Availability updated
	Message string `json:"message"`
}

// NewSetDonorAvailabilityHandler returns an HTTP handler that toggles
// the authenticated donor's availability flag.
// @Summary Update donor availability
// @Description Sets the authenticated user's blood donor availability
// @Tags donors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param setAvailabilityRequest body handlers.SetAvailabilityRequest true "Availability flag"
// @Success 200 {object} handlers.SetAvailabilityResponse "Availability updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Donor not found"
// @Router /donors/blood/availability [put]
func NewSetDonorAvailabilityHandler(svc AvailabilityUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req SetAvailabilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.SetDonorAvailability(r.Context(), userID, req.Available); err != nil {
			switch {
			case errors.Is(err, services.ErrDonorNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Donor not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: msgTryAgain})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SetAvailabilityResponse{Message: "Availability updated"})
	}
}
