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

// HealthRecordReadRepository reads health record rows.
type HealthRecordReadRepository struct {
	table *storage.Table
}

func NewHealthRecordReadRepository(table *storage.Table) *HealthRecordReadRepository {
	return &HealthRecordReadRepository{table: table}
}

// ListByUser returns the user's health records in ascending date
// order. Dates are ISO-8601 strings, so lexical order is date order;
// ties keep insertion order.
func (r *HealthRecordReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.HealthRecord, error) {
	rows, err := r.table.ReadAll()
	if err != nil {
		logger.Log.Errorw("health records read failed", "user_id", userID, "error", err)
		return nil, err
	}

	key := userID.String()
	records := make([]models.HealthRecord, 0)
	for _, row := range rows {
		if row["user_id"] != key {
			continue
		}
		rec, err := healthRecordFromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
	return records, nil
}

// HealthRecordWriteRepository appends health record rows.
type HealthRecordWriteRepository struct {
	table *storage.Table
}

func NewHealthRecordWriteRepository(table *storage.Table) *HealthRecordWriteRepository {
	return &HealthRecordWriteRepository{table: table}
}

// Save appends one health record row.
func (r *HealthRecordWriteRepository) Save(ctx context.Context, rec models.HealthRecord) error {
	err := r.table.Append(storage.Row{
		"record_id":      rec.RecordID.String(),
		"user_id":        rec.UserID.String(),
		"date":           rec.Date,
		"heart_rate":     rec.HeartRate,
		"blood_pressure": rec.BloodPressure,
		"weight":         rec.Weight,
		"height":         rec.Height,
		"temperature":    rec.Temperature,
		"notes":          rec.Notes,
	})
	logger.Log.Infow("health record saved",
		"record_id", rec.RecordID,
		"user_id", rec.UserID,
		"error", err,
	)
	return err
}

func healthRecordFromRow(row storage.Row) (*models.HealthRecord, error) {
	recordID, err := uuid.Parse(row["record_id"])
	if err != nil {
		return nil, fmt.Errorf("malformed health record row: %w", err)
	}
	userID, err := uuid.Parse(row["user_id"])
	if err != nil {
		return nil, fmt.Errorf("malformed health record row: %w", err)
	}
	return &models.HealthRecord{
		RecordID:      recordID,
		UserID:        userID,
		Date:          row["date"],
		HeartRate:     row["heart_rate"],
		BloodPressure: row["blood_pressure"],
		Weight:        row["weight"],
		Height:        row["height"],
		Temperature:   row["temperature"],
		Notes:         row["notes"],
	}, nil
}
