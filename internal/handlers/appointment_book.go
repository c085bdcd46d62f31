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

// AppointmentBooker defines the interface that the appointment
// service must implement.
type AppointmentBooker interface {
	BookAppointment(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
}

// BookAppointmentRequest represents the JSON body for booking
// swagger:model BookAppointmentRequest
type BookAppointmentRequest struct {
	// Doctor name
	// required: true
	// default: Dr. Sarah Johnson
	DoctorName string `json:"doctor_name"`

	// Medical specialty
	// default: Cardiology
	Specialty string `json:"specialty"`

	// Appointment date, YYYY-MM-DD
	// required: true
	// default: 2024-02-01
	Date string `json:"date"`

	// Appointment time, HH:MM
	// required: true
	// default: 14:30
	Time string `json:"time"`

	// Consultation type
	// default: Virtual Consultation
	Type string `json:"type"`

	// Free-text notes
	Notes string `json:"notes"`
}

// NewBookAppointmentHandler returns an HTTP handler for booking an
// appointment for the authenticated user.
// @Summary Book appointment
// @Description Creates a Scheduled appointment for the authenticated user
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookAppointmentRequest body handlers.BookAppointmentRequest true "Booking request"
// @Success 201 {object} models.Appointment "Appointment created"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields / invalid request"
// @Failure 401 "Missing or invalid token"
// @Router /appointments [post]
func NewBookAppointmentHandler(svc AppointmentBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req BookAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		appt, err := svc.BookAppointment(r.Context(), models.Appointment{
			UserID:     userID,
			DoctorName: req.DoctorName,
			Specialty:  req.Specialty,
			Date:       req.Date,
			Time:       req.Time,
			Type:       req.Type,
			Notes:      req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingAppointment):
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
		json.NewEncoder(w).Encode(appt)
	}
}
