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

// BloodDonorRegistrar defines the interface that the donor service
// must implement.
type BloodDonorRegistrar interface {
	RegisterBloodDonor(ctx context.Context, donor models.BloodDonor) (*models.BloodDonor, error)
}

// RegisterBloodDonorRequest represents the JSON body for registering
// as a blood donor
// swagger:model RegisterBloodDonorRequest
type RegisterBloodDonorRequest struct {
	// Blood group
	// required: true
	// default: O+
	BloodGroup string `json:"blood_group"`

	// Donor location
	// default: Springfield
	Location string `json:"location"`

	// Contact phone
	Contact string `json:"contact"`

	// Last donation date, YYYY-MM-DD
	LastDonation string `json:"last_donation"`

	// Lifetime donation count
	TotalDonations int `json:"total_donations"`
}

// NewRegisterBloodDonorHandler returns an HTTP handler that registers
// the authenticated user as an available blood donor.
// @Summary Register blood donor
// @Description Registers the authenticated user as an available blood donor
// @Tags donors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registerBloodDonorRequest body handlers.RegisterBloodDonorRequest true "Donor details"
// @Success 201 {object} models.BloodDonor "Donor registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid blood group / invalid request"
// @Failure 401 "Missing or invalid token"
// @Router /donors/blood [post]
func NewRegisterBloodDonorHandler(svc BloodDonorRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req RegisterBloodDonorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		donor, err := svc.RegisterBloodDonor(r.Context(), models.BloodDonor{
			UserID:         userID,
			BloodGroup:     req.BloodGroup,
			Location:       req.Location,
			Contact:        req.Contact,
			LastDonation:   req.LastDonation,
			TotalDonations: req.TotalDonations,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidBloodGroup):
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
		json.NewEncoder(w).Encode(donor)
	}
}
