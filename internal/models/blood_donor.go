package models

import (
	"github.com/google/uuid"
)

// BloodGroups lists the supported blood group values.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// BloodDonor is a user's entry in the blood donor directory.
type BloodDonor struct {
	DonorID        uuid.UUID `json:"donor_id"`
	UserID         uuid.UUID `json:"user_id"`
	BloodGroup     string    `json:"blood_group"`
	Location       string    `json:"location"`
	Contact        string    `json:"contact"`
	LastDonation   string    `json:"last_donation"` // YYYY-MM-DD, empty if never
	TotalDonations int       `json:"total_donations"`
	Available      bool      `json:"available"`
}
