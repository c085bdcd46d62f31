package models

import (
	"github.com/google/uuid"
)

// Appointment status values. Cancellation is a status change,
// rows are never deleted.
const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

// Appointment is a booked consultation for a user.
type Appointment struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	UserID        uuid.UUID `json:"user_id"`
	DoctorName    string    `json:"doctor_name"`
	Specialty     string    `json:"specialty"`
	Date          string    `json:"date"` // YYYY-MM-DD
	Time          string    `json:"time"` // HH:MM
	Status        string    `json:"status"`
	Type          string    `json:"type"` // e.g. Virtual Consultation
	Notes         string    `json:"notes"`
}
