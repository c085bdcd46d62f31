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

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string, age int, gender, bloodGroup string) (*models.User, error)
}

// UpdateProfileRequest represents the JSON body for a profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Full name
	// default: Jane Doe
	Name string `json:"name"`

	// Phone number
	// default: +15550123456
	Phone string `json:"phone"`

	// Age in years
	// default: 34
	Age int `json:"age"`

	// Gender
	// default: Female
	Gender string `json:"gender"`

	// Blood group
	// default: O+
	BloodGroup string `json:"blood_group"`
}

// NewUpdateProfileHandler returns an HTTP handler for updating the
// authenticated user's profile fields. Email is not editable.
// @Summary Update profile
// @Description Overwrites the editable profile fields
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} models.User "Updated account returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /profile [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		user, err := svc.UpdateProfile(r.Context(), userID, req.Name, req.Phone, req.Age, req.Gender, req.BloodGroup)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPhone):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: msgTryAgain})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
