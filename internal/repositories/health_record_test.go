package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/carelink-portal/internal/models"
)

func TestHealthRecordRepository_ListByUser_DateOrder(t *testing.T) {
	tables := setupTables(t)
	reader := NewHealthRecordReadRepository(tables.HealthRecords)
	writer := NewHealthRecordWriteRepository(tables.HealthRecords)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	// Inserted out of date order on purpose.
	for _, rec := range []models.HealthRecord{
		{RecordID: uuid.New(), UserID: userID, Date: "2024-03-01", HeartRate: "75"},
		{RecordID: uuid.New(), UserID: userID, Date: "2024-01-15", HeartRate: "72"},
		{RecordID: uuid.New(), UserID: otherID, Date: "2024-02-01", HeartRate: "90"},
		{RecordID: uuid.New(), UserID: userID, Date: "2024-02-20", HeartRate: "70"},
	} {
		require.NoError(t, writer.Save(ctx, rec))
	}

	records, err := reader.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "2024-01-15", records[0].Date)
	assert.Equal(t, "2024-02-20", records[1].Date)
	assert.Equal(t, "2024-03-01", records[2].Date)
}

func TestHealthRecordRepository_ListByUser_TiesKeepInsertionOrder(t *testing.T) {
	tables := setupTables(t)
	reader := NewHealthRecordReadRepository(tables.HealthRecords)
	writer := NewHealthRecordWriteRepository(tables.HealthRecords)

	ctx := context.Background()
	userID := uuid.New()

	first := models.HealthRecord{RecordID: uuid.New(), UserID: userID, Date: "2024-01-15", Notes: "morning"}
	second := models.HealthRecord{RecordID: uuid.New(), UserID: userID, Date: "2024-01-15", Notes: "evening"}
	require.NoError(t, writer.Save(ctx, first))
	require.NoError(t, writer.Save(ctx, second))

	records, err := reader.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "morning", records[0].Notes)
	assert.Equal(t, "evening", records[1].Notes)
}

func TestHealthRecordRepository_ListByUser_Empty(t *testing.T) {
	tables := setupTables(t)
	reader := NewHealthRecordReadRepository(tables.HealthRecords)

	records, err := reader.ListByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, records)
}
