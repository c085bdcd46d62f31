package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
)

// Error variables
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentFinished = errors.New("appointment is already completed or cancelled")
	ErrMissingAppointment  = errors.New("doctor, date and time are required")
)

// AppointmentReader defines read operations for appointments.
type AppointmentReader interface {
	GetByID(ctx context.Context, appointmentID uuid.UUID) (*models.Appointment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Appointment, error)
}

// AppointmentWriter defines write operations for appointments.
type AppointmentWriter interface {
	Save(ctx context.Context, appt models.Appointment) error
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status string) (bool, error)
}

// AppointmentService books, lists and cancels consultations.
type AppointmentService struct {
	reader AppointmentReader
	writer AppointmentWriter
	audit  AuditWriter
	events KafkaWriter
}

// NewAppointmentService creates a new AppointmentService instance.
// audit and events may be nil.
func NewAppointmentService(reader AppointmentReader, writer AppointmentWriter, audit AuditWriter, events KafkaWriter) *AppointmentService {
	return &AppointmentService{
		reader: reader,
		writer: writer,
		audit:  audit,
		events: events,
	}
}

// BookAppointment persists a new appointment for appt.UserID with
// status Scheduled and publishes a booking event.
func (svc *AppointmentService) BookAppointment(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	if appt.DoctorName == "" || appt.Date == "" || appt.Time == "" {
		return nil, ErrMissingAppointment
	}

	appt.AppointmentID = uuid.New()
	appt.Status = models.AppointmentScheduled

	if err := svc.writer.Save(ctx, appt); err != nil {
		logger.Log.Errorw("failed to save appointment", "user_id", appt.UserID, "err", err)
		return nil, err
	}

	writeAudit(ctx, svc.audit, appt.UserID.String(), "appointment", appt.AppointmentID.String(), "booked")
	publishEvent(ctx, svc.events, appt.UserID, "appointment", appt.AppointmentID.String(), "booked")

	return &appt, nil
}

// ListAppointments returns the user's appointments in ascending
// date/time order.
func (svc *AppointmentService) ListAppointments(ctx context.Context, userID uuid.UUID) ([]models.Appointment, error) {
	appts, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list appointments", "user_id", userID, "err", err)
		return nil, err
	}
	return appts, nil
}

// CancelAppointment sets the appointment status to Cancelled. The row
// stays in the table. An appointment belonging to another user is
// reported as not found.
func (svc *AppointmentService) CancelAppointment(ctx context.Context, userID, appointmentID uuid.UUID) error {
	appt, err := svc.reader.GetByID(ctx, appointmentID)
	if err != nil {
		logger.Log.Errorw("failed to get appointment", "appointment_id", appointmentID, "err", err)
		return err
	}
	if appt == nil || appt.UserID != userID {
		return ErrAppointmentNotFound
	}
	if appt.Status != models.AppointmentScheduled {
		return ErrAppointmentFinished
	}

	ok, err := svc.writer.UpdateStatus(ctx, appointmentID, models.AppointmentCancelled)
	if err != nil {
		logger.Log.Errorw("failed to cancel appointment", "appointment_id", appointmentID, "err", err)
		return err
	}
	if !ok {
		return ErrAppointmentNotFound
	}

	writeAudit(ctx, svc.audit, userID.String(), "appointment", appointmentID.String(), "cancelled")
	publishEvent(ctx, svc.events, userID, "appointment", appointmentID.String(), "cancelled")

	return nil
}
