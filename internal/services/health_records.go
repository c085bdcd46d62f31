package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
)

// ErrEmptyHealthRecord is returned when a record carries no
// measurement and no notes.
var ErrEmptyHealthRecord = errors.New("health record has no measurements or notes")

// HealthRecordReader defines read operations for health records.
type HealthRecordReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.HealthRecord, error)
}

// HealthRecordWriter defines write operations for health records.
type HealthRecordWriter interface {
	Save(ctx context.Context, rec models.HealthRecord) error
}

// HealthRecordService logs and lists per-user vitals.
type HealthRecordService struct {
	reader HealthRecordReader
	writer HealthRecordWriter
	audit  AuditWriter
}

// NewHealthRecordService creates a new HealthRecordService instance.
// audit may be nil.
func NewHealthRecordService(reader HealthRecordReader, writer HealthRecordWriter, audit AuditWriter) *HealthRecordService {
	return &HealthRecordService{
		reader: reader,
		writer: writer,
		audit:  audit,
	}
}

// AddHealthRecord persists one vitals entry for rec.UserID. Every
// measurement is optional, but an entirely empty record is rejected.
// A missing date defaults to today.
func (svc *HealthRecordService) AddHealthRecord(ctx context.Context, rec models.HealthRecord) (*models.HealthRecord, error) {
	if rec.HeartRate == "" && rec.BloodPressure == "" && rec.Weight == "" &&
		rec.Height == "" && rec.Temperature == "" && rec.Notes == "" {
		return nil, ErrEmptyHealthRecord
	}

	rec.RecordID = uuid.New()
	if rec.Date == "" {
		rec.Date = time.Now().Format("2006-01-02")
	}

	if err := svc.writer.Save(ctx, rec); err != nil {
		logger.Log.Errorw("failed to save health record", "user_id", rec.UserID, "err", err)
		return nil, err
	}

	writeAudit(ctx, svc.audit, rec.UserID.String(), "health_record", rec.RecordID.String(), "created")

	return &rec, nil
}

// ListHealthRecords returns the user's records in ascending date order.
func (svc *HealthRecordService) ListHealthRecords(ctx context.Context, userID uuid.UUID) ([]models.HealthRecord, error) {
	records, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list health records", "user_id", userID, "err", err)
		return nil, err
	}
	return records, nil
}
