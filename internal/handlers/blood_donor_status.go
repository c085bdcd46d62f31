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

// DonorStatusGetter defines the interface that the donor service must
// implement.
type DonorStatusGetter interface {
	GetDonorStatus(ctx context.Context, userID uuid.UUID) (*models.BloodDonor, error)
}

// NewGetDonorStatusHandler returns an HTTP handler for reading the
// authenticated user's own blood donor registration.
// @Summary Get donor status
// @Description Returns the authenticated user's blood donor registration
// @Tags donors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.BloodDonor "Registration returned"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Donor not found"
// @Router /donors/blood/me [get]
func NewGetDonorStatusHandler(svc DonorStatusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		donor, err := svc.GetDonorStatus(r.Context(), userID)
		if err != nil {
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
		json.NewEncoder(w).Encode(donor)
	}
}
