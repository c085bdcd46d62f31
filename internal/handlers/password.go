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

// PasswordUpdater defines the interface that the profile service must implement.
type PasswordUpdater interface {
	UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// UpdatePasswordRequest represents the JSON body for a password change
// swagger:model UpdatePasswordRequest
type UpdatePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password"`

	// New password, at least 6 characters
	// required: true
	NewPassword string `json:"new_password"`
}

// UpdatePasswordResponse represents a successful password change
// swagger:model UpdatePasswordResponse
type UpdatePasswordResponse struct {
	// Success message
	// default: Password updated
	Message string `json:"message"`
}

// NewUpdatePasswordHandler returns an HTTP handler for changing the
// authenticated user's password.
// @Summary Change password
// @Description Verifies the current password and stores a new hash
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updatePasswordRequest body handlers.UpdatePasswordRequest true "Password change request"
// @Success 200 {object} handlers.UpdatePasswordResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "New password too short / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Current password wrong"
// @Router /profile/password [put]
func NewUpdatePasswordHandler(svc PasswordUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req UpdatePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPasswordTooShort):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: msgInvalidCredentials})
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
		json.NewEncoder(w).Encode(UpdatePasswordResponse{Message: "Password updated"})
	}
}
