package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/middlewares"
	"github.com/carelink/carelink-portal/internal/models"
)

// AppointmentLister defines the interface that the appointment
// service must implement.
type AppointmentLister interface {
	ListAppointments(ctx context.Context, userID uuid.UUID) ([]models.Appointment, error)
}

// NewListAppointmentsHandler returns an HTTP handler for listing the
// authenticated user's appointments in ascending date order.
// @Summary List appointments
// @Description Returns the authenticated user's appointments, soonest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Appointment "Appointments returned"
// @Failure 401 "Missing or invalid token"
// @Router /appointments [get]
func NewListAppointmentsHandler(svc AppointmentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		appts, err := svc.ListAppointments(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: msgTryAgain})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(appts)
	}
}
