package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/storage"
)

// AppointmentReadRepository reads appointment rows.
type AppointmentReadRepository struct {
	table *storage.Table
}

func NewAppointmentReadRepository(table *storage.Table) *AppointmentReadRepository {
	return &AppointmentReadRepository{table: table}
}

// GetByID returns the appointment with the given id, or nil when no
// row matches.
func (r *AppointmentReadRepository) GetByID(ctx context.Context, appointmentID uuid.UUID) (*models.Appointment, error) {
	rows, err := r.table.ReadAll()
	if err != nil {
		logger.Log.Errorw("appointments read failed", "op", "GetByID", "error", err)
		return nil, err
	}

	key := appointmentID.String()
	for _, row := range rows {
		if row["appointment_id"] == key {
			return appointmentFromRow(row)
		}
	}
	return nil, nil
}

// ListByUser returns the user's appointments ordered by date, then
// time, ascending.
func (r *AppointmentReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Appointment, error) {
	rows, err := r.table.ReadAll()
	if err != nil {
		logger.Log.Errorw("appointments read failed", "user_id", userID, "error", err)
		return nil, err
	}

	key := userID.String()
	appts := make([]models.Appointment, 0)
	for _, row := range rows {
		if row["user_id"] != key {
			continue
		}
		appt, err := appointmentFromRow(row)
		if err != nil {
			return nil, err
		}
		appts = append(appts, *appt)
	}

	sort.SliceStable(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date < appts[j].Date
		}
		return appts[i].Time < appts[j].Time
	})
	return appts, nil
}

// AppointmentWriteRepository appends and updates appointment rows.
type AppointmentWriteRepository struct {
	table *storage.Table
}

func NewAppointmentWriteRepository(table *storage.Table) *AppointmentWriteRepository {
	return &AppointmentWriteRepository{table: table}
}

// Save appends one appointment row.
func (r *AppointmentWriteRepository) Save(ctx context.Context, appt models.Appointment) error {
	err := r.table.Append(storage.Row{
		"appointment_id": appt.AppointmentID.String(),
		"user_id":        appt.UserID.String(),
		"doctor_name":    appt.DoctorName,
		"specialty":      appt.Specialty,
		"date":           appt.Date,
		"time":           appt.Time,
		"status":         appt.Status,
		"type":           appt.Type,
		"notes":          appt.Notes,
	})
	logger.Log.Infow("appointment saved",
		"appointment_id", appt.AppointmentID,
		"user_id", appt.UserID,
		"error", err,
	)
	return err
}

// UpdateStatus sets the status field of one appointment. Returns
// false when the id is not present.
func (r *AppointmentWriteRepository) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status string) (bool, error) {
	ok, err := r.table.Update("appointment_id", appointmentID.String(), storage.Row{
		"status": status,
	})
	logger.Log.Infow("appointment status updated",
		"appointment_id", appointmentID,
		"status", status,
		"found", ok,
		"error", err,
	)
	return ok, err
}

func appointmentFromRow(row storage.Row) (*models.Appointment, error) {
	appointmentID, err := uuid.Parse(row["appointment_id"])
	if err != nil {
		return nil, fmt.Errorf("malformed appointment row: %w", err)
	}
	userID, err := uuid.Parse(row["user_id"])
	if err != nil {
		return nil, fmt.Errorf("malformed appointment row: %w", err)
	}
	return &models.Appointment{
		AppointmentID: appointmentID,
		UserID:        userID,
		DoctorName:    row["doctor_name"],
		Specialty:     row["specialty"],
		Date:          row["date"],
		Time:          row["time"],
		Status:        row["status"],
		Type:          row["type"],
		Notes:         row["notes"],
	}, nil
}
