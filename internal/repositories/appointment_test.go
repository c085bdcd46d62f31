package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/carelink-portal/internal/models"
)

func TestAppointmentRepository_SaveAndGet(t *testing.T) {
	tables := setupTables(t)
	reader := NewAppointmentReadRepository(tables.Appointments)
	writer := NewAppointmentWriteRepository(tables.Appointments)

	ctx := context.Background()
	appt := models.Appointment{
		AppointmentID: uuid.New(),
		UserID:        uuid.New(),
		DoctorName:    "Dr. Sarah Johnson",
		Specialty:     "Cardiology",
		Date:          "2024-02-01",
		Time:          "14:30",
		Status:        models.AppointmentScheduled,
		Type:          "Virtual Consultation",
	}
	require.NoError(t, writer.Save(ctx, appt))

	got, err := reader.GetByID(ctx, appt.AppointmentID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, appt, *got)

	missing, err := reader.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAppointmentRepository_ListByUser_DateTimeOrder(t *testing.T) {
	tables := setupTables(t)
	reader := NewAppointmentReadRepository(tables.Appointments)
	writer := NewAppointmentWriteRepository(tables.Appointments)

	ctx := context.Background()
	userID := uuid.New()

	for _, appt := range []models.Appointment{
		{AppointmentID: uuid.New(), UserID: userID, DoctorName: "Dr. A", Date: "2024-02-01", Time: "14:30", Status: models.AppointmentScheduled},
		{AppointmentID: uuid.New(), UserID: userID, DoctorName: "Dr. B", Date: "2024-01-20", Time: "09:00", Status: models.AppointmentScheduled},
		{AppointmentID: uuid.New(), UserID: userID, DoctorName: "Dr. C", Date: "2024-02-01", Time: "09:00", Status: models.AppointmentScheduled},
	} {
		require.NoError(t, writer.Save(ctx, appt))
	}

	appts, err := reader.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, appts, 3)

	assert.Equal(t, "Dr. B", appts[0].DoctorName)
	assert.Equal(t, "Dr. C", appts[1].DoctorName)
	assert.Equal(t, "Dr. A", appts[2].DoctorName)
}

func TestAppointmentRepository_UpdateStatus(t *testing.T) {
	tables := setupTables(t)
	reader := NewAppointmentReadRepository(tables.Appointments)
	writer := NewAppointmentWriteRepository(tables.Appointments)

	ctx := context.Background()
	appt := models.Appointment{
		AppointmentID: uuid.New(),
		UserID:        uuid.New(),
		DoctorName:    "Dr. Sarah Johnson",
		Date:          "2024-02-01",
		Time:          "14:30",
		Status:        models.AppointmentScheduled,
	}
	require.NoError(t, writer.Save(ctx, appt))

	t.Run("existing appointment", func(t *testing.T) {
		ok, err := writer.UpdateStatus(ctx, appt.AppointmentID, models.AppointmentCancelled)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := reader.GetByID(ctx, appt.AppointmentID)
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentCancelled, got.Status)
		// the row itself stays
		assert.Equal(t, "Dr. Sarah Johnson", got.DoctorName)
	})

	t.Run("missing appointment", func(t *testing.T) {
		ok, err := writer.UpdateStatus(ctx, uuid.New(), models.AppointmentCancelled)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
