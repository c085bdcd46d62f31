package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/middlewares"
	"github.com/carelink/carelink-portal/internal/services"
)

// AppointmentCanceller defines the interface that the appointment
// service must implement.
type AppointmentCanceller interface {
	CancelAppointment(ctx context.Context, userID, appointmentID uuid.UUID) error
}

// CancelAppointmentResponse represents a successful cancellation
// swagger:model CancelAppointmentResponse
type CancelAppointmentResponse struct {
	// Success message
	// default: Appointment cancelled
	Message string `json:"message"`
}

// NewCancelAppointmentHandler returns an HTTP handler that sets an
// appointment's status to Cancelled. The row is kept.
// @Summary Cancel appointment
// @Description Marks the authenticated user's appointment as Cancelled
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param appointmentID path string true "Appointment ID"
// @Success 200 {object} handlers.CancelAppointmentResponse "Appointment cancelled"
// @Failure 400 {object} handlers.ErrorResponse "Invalid appointment id"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Appointment not found"
// @Failure 409 {object} handlers.ErrorResponse "Appointment already finished"
// @Router /appointments/{appointmentID}/cancel [put]
func NewCancelAppointmentHandler(svc AppointmentCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		appointmentID, err := uuid.Parse(chi.URLParam(r, "appointmentID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid appointment id"})
			return
		}

		if err := svc.CancelAppointment(r.Context(), userID, appointmentID); err != nil {
			switch {
			case errors.Is(err, services.ErrAppointmentNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Appointment not found"})
			case errors.Is(err, services.ErrAppointmentFinished):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: msgTryAgain})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CancelAppointmentResponse{Message: "Appointment cancelled"})
	}
}
