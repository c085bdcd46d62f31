package models

import (
	"github.com/google/uuid"
)

// User represents a portal account row in the users table.
type User struct {
	UserID       uuid.UUID `json:"user_id"`       // Primary key
	Name         string    `json:"name"`          // Display name
	Email        string    `json:"email"`         // Unique login email
	Phone        string    `json:"phone"`         // Contact phone
	Age          int       `json:"age"`           // Age in years
	Gender       string    `json:"gender"`        // Self-reported gender
	BloodGroup   string    `json:"blood_group"`   // e.g. O+, AB-
	PasswordHash string    `json:"-"`             // bcrypt hash, never serialized
	CreatedDate  string    `json:"created_date"`  // YYYY-MM-DD
}
