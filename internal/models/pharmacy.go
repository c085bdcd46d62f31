package models

import (
	"github.com/google/uuid"
)

// Pharmacy is an entry in the read-only pharmacy directory.
// The table is seeded externally; the service never writes it.
type Pharmacy struct {
	PharmacyID uuid.UUID `json:"pharmacy_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Hours      string    `json:"hours"`
	Services   string    `json:"services"`
}
