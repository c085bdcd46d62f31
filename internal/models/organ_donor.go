package models

import (
	"github.com/google/uuid"
)

// OrganDonorActive is the status of a live organ donor pledge.
const OrganDonorActive = "Active"

// OrganDonor is a user's organ donation pledge.
type OrganDonor struct {
	DonorID           uuid.UUID `json:"donor_id"`
	UserID            uuid.UUID `json:"user_id"`
	Organs            []string  `json:"organs"` // pledged organs
	MedicalConditions string    `json:"medical_conditions"`
	EmergencyContact  string    `json:"emergency_contact"`
	RegisteredDate    string    `json:"registered_date"` // YYYY-MM-DD
	Status            string    `json:"status"`
}
