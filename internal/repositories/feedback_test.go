package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/carelink-portal/internal/models"
)

func TestFeedbackRepository_Save(t *testing.T) {
	tables := setupTables(t)
	writer := NewFeedbackWriteRepository(tables.Feedback)

	ctx := context.Background()
	fb := models.Feedback{
		FeedbackID:  uuid.New(),
		UserID:      uuid.New(),
		ServiceType: "Appointments",
		Rating:      4,
		Comment:     "Booking was quick.",
		Date:        "2024-01-15",
	}
	require.NoError(t, writer.Save(ctx, fb))
	require.NoError(t, writer.Save(ctx, models.Feedback{
		FeedbackID:  uuid.New(),
		UserID:      fb.UserID,
		ServiceType: "Pharmacy",
		Rating:      5,
		Date:        "2024-01-16",
	}))

	rows, err := tables.Feedback.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, fb.FeedbackID.String(), rows[0]["feedback_id"])
	assert.Equal(t, "4", rows[0]["rating"])
	assert.Equal(t, "Booking was quick.", rows[0]["comment"])
	assert.Equal(t, "Pharmacy", rows[1]["service_type"])
}
