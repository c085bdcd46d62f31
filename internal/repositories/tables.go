package repositories

import (
	"github.com/carelink/carelink-portal/internal/storage"
)

// Column schemas for the CSV tables, in header order. The header row
// of each file must match its schema exactly.
var (
	userColumns = []string{
		"user_id", "name", "email", "phone", "age", "gender",
		"blood_group", "password_hash", "created_date",
	}
	healthRecordColumns = []string{
		"record_id", "user_id", "date", "heart_rate", "blood_pressure",
		"weight", "height", "temperature", "notes",
	}
	appointmentColumns = []string{
		"appointment_id", "user_id", "doctor_name", "specialty",
		"date", "time", "status", "type", "notes",
	}
	bloodDonorColumns = []string{
		"donor_id", "user_id", "blood_group", "location", "contact",
		"last_donation", "total_donations", "available",
	}
	organDonorColumns = []string{
		"donor_id", "user_id", "organs", "medical_conditions",
		"emergency_contact", "registered_date", "status",
	}
	communityPostColumns = []string{
		"post_id", "user_id", "author", "title", "content",
		"category", "date", "likes", "comments",
	}
	feedbackColumns = []string{
		"feedback_id", "user_id", "service_type", "rating",
		"comment", "date",
	}
	pharmacyColumns = []string{
		"pharmacy_id", "name", "address", "phone", "hours", "services",
	}
)

// Tables bundles the CSV tables backing the record store, one file per
// entity under the data directory.
type Tables struct {
	Users          *storage.Table
	HealthRecords  *storage.Table
	Appointments   *storage.Table
	BloodDonors    *storage.Table
	OrganDonors    *storage.Table
	CommunityPosts *storage.Table
	Feedback       *storage.Table
	Pharmacies     *storage.Table
}

// NewTables builds table handles under dataDir. No files are touched
// until EnsureSchema is called.
func NewTables(dataDir string) *Tables {
	return &Tables{
		Users:          storage.NewTable(dataDir, "users", userColumns),
		HealthRecords:  storage.NewTable(dataDir, "health_records", healthRecordColumns),
		Appointments:   storage.NewTable(dataDir, "appointments", appointmentColumns),
		BloodDonors:    storage.NewTable(dataDir, "blood_donors", bloodDonorColumns),
		OrganDonors:    storage.NewTable(dataDir, "organ_donors", organDonorColumns),
		CommunityPosts: storage.NewTable(dataDir, "community_posts", communityPostColumns),
		Feedback:       storage.NewTable(dataDir, "feedback", feedbackColumns),
		Pharmacies:     storage.NewTable(dataDir, "pharmacies", pharmacyColumns),
	}
}

// EnsureSchema creates every missing table file with its header row.
// Idempotent; existing files are left untouched.
func (t *Tables) EnsureSchema() error {
	all := []*storage.Table{
		t.Users, t.HealthRecords, t.Appointments, t.BloodDonors,
		t.OrganDonors, t.CommunityPosts, t.Feedback, t.Pharmacies,
	}
	for _, tbl := range all {
		if err := tbl.Ensure(); err != nil {
			return err
		}
	}
	return nil
}
