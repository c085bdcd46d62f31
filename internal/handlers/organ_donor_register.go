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

// OrganDonorRegistrar defines the interface that the donor service
// must implement.
type OrganDonorRegistrar interface {
	RegisterOrganDonor(ctx context.Context, donor models.OrganDonor) (*models.OrganDonor, error)
}

// RegisterOrganDonorRequest represents the JSON body for registering
// as an organ donor
// swagger:model RegisterOrganDonorRequest
type RegisterOrganDonorRequest struct {
	// Organs pledged for donation
	// required: true
	Organs []string `json:"organs"`

	// Known medical conditions
	MedicalConditions string `json:"medical_conditions"`

	// Emergency contact phone
	EmergencyContact string `json:"emergency_contact"`
}

// NewRegisterOrganDonorHandler returns an HTTP handler that registers
// the authenticated user as an organ donor.
// @Summary Register organ donor
// @Description Registers the authenticated user as an active organ donor
// @Tags donors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registerOrganDonorRequest body handlers.RegisterOrganDonorRequest true "Donor details"
// @Success 201 {object} models.OrganDonor "Donor registered"
// @Failure 400 {object} handlers.ErrorResponse "No organs selected / invalid request"
// @Failure 401 "Missing or invalid token"
// @Router /donors/organ [post]
func NewRegisterOrganDonorHandler(svc OrganDonorRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req RegisterOrganDonorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		donor, err := svc.RegisterOrganDonor(r.Context(), models.OrganDonor{
			UserID:            userID,
			Organs:            req.Organs,
			MedicalConditions: req.MedicalConditions,
			EmergencyContact:  req.EmergencyContact,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoOrgansSelected):
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
