package models

import (
	"github.com/google/uuid"
)

// HealthRecord is one logged set of vitals for a user.
// All measurements are optional; empty means not recorded.
// Values are stored and returned verbatim, never computed on.
type HealthRecord struct {
	RecordID      uuid.UUID `json:"record_id"`
	UserID        uuid.UUID `json:"user_id"`
	Date          string    `json:"date"` // YYYY-MM-DD
	HeartRate     string    `json:"heart_rate"`
	BloodPressure string    `json:"blood_pressure"` // e.g. 120/80
	Weight        string    `json:"weight"`
	Height        string    `json:"height"`
	Temperature   string    `json:"temperature"`
	Notes         string    `json:"notes"`
}
