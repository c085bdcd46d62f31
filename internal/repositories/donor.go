package repositories

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/storage"
)

// organSeparator joins the pledged organ list inside one CSV field.
const organSeparator = ";"

// BloodDonorReadRepository reads blood donor rows.
type BloodDonorReadRepository struct {
	table *storage.Table
}

func NewBloodDonorReadRepository(table *storage.Table) *BloodDonorReadRepository {
	return &BloodDonorReadRepository{table: table}
}

// List returns donors filtered by blood group; an empty bloodGroup
// returns every donor. Rows keep insertion order.
func (r *BloodDonorReadRepository) List(ctx context.Context, bloodGroup string) ([]models.BloodDonor, error) {
	rows, err := r.table.ReadAll()
	if err != nil {
		logger.Log.Errorw("blood donors read failed", "blood_group", bloodGroup, "error", err)
		return nil, err
	}

	donors := make([]models.BloodDonor, 0)
	for _, row := range rows {
		if bloodGroup != "" && row["blood_group"] != bloodGroup {
			continue
		}
		donor, err := bloodDonorFromRow(row)
		if err != nil {
			return nil, err
		}
		donors = append(donors, *donor)
	}
	return donors, nil
}

// GetByUser returns the user's donor registration, or nil when the
// user is not registered. The first row wins.
func (r *BloodDonorReadRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*models.BloodDonor, error) {
	rows, err := r.table.ReadAll()
	if err != nil {
		logger.Log.Errorw("blood donors read failed", "user_id", userID, "error", err)
		return nil, err
	}

	key := userID.String()
	for _, row := range rows {
		if row["user_id"] == key {
			return bloodDonorFromRow(row)
		}
	}
	return nil, nil
}

// BloodDonorWriteRepository appends and updates blood donor rows.
type BloodDonorWriteRepository struct {
	table *storage.Table
}

func NewBloodDonorWriteRepository(table *storage.Table) *BloodDonorWriteRepository {
	return &BloodDonorWriteRepository{table: table}
}

// Save appends one blood donor row.
func (r *BloodDonorWriteRepository) Save(ctx context.Context, donor models.BloodDonor) error {
	err := r.table.Append(storage.Row{
		"donor_id":        donor.DonorID.String(),
		"user_id":         donor.UserID.String(),
		"blood_group":     donor.BloodGroup,
		"location":        donor.Location,
		"contact":         donor.Contact,
		"last_donation":   donor.LastDonation,
		"total_donations": strconv.Itoa(donor.TotalDonations),
		"available":       strconv.FormatBool(donor.Available),
	})
	logger.Log.Infow("blood donor saved",
		"donor_id", donor.DonorID,
		"user_id", donor.UserID,
		"blood_group", donor.BloodGroup,
		"error", err,
	)
	return err
}

// SetAvailability flips the available flag on the user's donor row.
// Returns false when the user has no registration.
func (r *BloodDonorWriteRepository) SetAvailability(ctx context.Context, userID uuid.UUID, available bool) (bool, error) {
	ok, err := r.table.Update("user_id", userID.String(), storage.Row{
		"available": strconv.FormatBool(available),
	})
	logger.Log.Infow("blood donor availability updated",
		"user_id", userID,
		"available", available,
		"found", ok,
		"error", err,
	)
	return ok, err
}

// OrganDonorWriteRepository appends organ donor rows.
type OrganDonorWriteRepository struct {
	table *storage.Table
}

func NewOrganDonorWriteRepository(table *storage.Table) *OrganDonorWriteRepository {
	return &OrganDonorWriteRepository{table: table}
}

// Save appends one organ donor row. The pledged organ list is joined
// with ";" inside a single field.
func (r *OrganDonorWriteRepository) Save(ctx context.Context, donor models.OrganDonor) error {
	err := r.table.Append(storage.Row{
		"donor_id":           donor.DonorID.String(),
		"user_id":            donor.UserID.String(),
		"organs":             strings.Join(donor.Organs, organSeparator),
		"medical_conditions": donor.MedicalConditions,
		"emergency_contact":  donor.EmergencyContact,
		"registered_date":    donor.RegisteredDate,
		"status":             donor.Status,
	})
	logger.Log.Infow("organ donor saved",
		"donor_id", donor.DonorID,
		"user_id", donor.UserID,
		"organs", donor.Organs,
		"error", err,
	)
	return err
}

func bloodDonorFromRow(row storage.Row) (*models.BloodDonor, error) {
	donorID, err := uuid.Parse(row["donor_id"])
	if err != nil {
		return nil, fmt.Errorf("malformed blood donor row: %w", err)
	}
	userID, err := uuid.Parse(row["user_id"])
	if err != nil {
		return nil, fmt.Errorf("malformed blood donor row: %w", err)
	}
	total, _ := strconv.Atoi(row["total_donations"])
	available, _ := strconv.ParseBool(row["available"])
	return &models.BloodDonor{
		DonorID:        donorID,
		UserID:         userID,
		BloodGroup:     row["blood_group"],
		Location:       row["location"],
		Contact:        row["contact"],
		LastDonation:   row["last_donation"],
		TotalDonations: total,
		Available:      available,
	}, nil
}
