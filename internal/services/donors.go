package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
)

// Error variables
var (
	ErrInvalidBloodGroup = errors.New("invalid blood group")
	ErrNoOrgansSelected  = errors.New("at least one organ must be selected")
	ErrDonorNotFound     = errors.New("donor registration not found")
)

// BloodDonorReader defines read operations for blood donors.
type BloodDonorReader interface {
	List(ctx context.Context, bloodGroup string) ([]models.BloodDonor, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.BloodDonor, error)
}

// BloodDonorWriter defines write operations for blood donors.
type BloodDonorWriter interface {
	Save(ctx context.Context, donor models.BloodDonor) error
	SetAvailability(ctx context.Context, userID uuid.UUID, available bool) (bool, error)
}

// OrganDonorWriter defines write operations for organ donors.
type OrganDonorWriter interface {
	Save(ctx context.Context, donor models.OrganDonor) error
}

// DonorService manages the blood and organ donor directories.
type DonorService struct {
	bloodReader BloodDonorReader
	bloodWriter BloodDonorWriter
	organWriter OrganDonorWriter
	audit       AuditWriter
	events      KafkaWriter
}

// NewDonorService creates a new DonorService instance. audit and
// events may be nil.
func NewDonorService(bloodReader BloodDonorReader, bloodWriter BloodDonorWriter, organWriter OrganDonorWriter, audit AuditWriter, events KafkaWriter) *DonorService {
	return &DonorService{
		bloodReader: bloodReader,
		bloodWriter: bloodWriter,
		organWriter: organWriter,
		audit:       audit,
		events:      events,
	}
}

// RegisterBloodDonor adds donor.UserID to the blood donor directory
// and publishes a registration event. New donors start available.
func (svc *DonorService) RegisterBloodDonor(ctx context.Context, donor models.BloodDonor) (*models.BloodDonor, error) {
	if !validBloodGroup(donor.BloodGroup) {
		return nil, ErrInvalidBloodGroup
	}

	donor.DonorID = uuid.New()
	donor.Available = true

	if err := svc.bloodWriter.Save(ctx, donor); err != nil {
		logger.Log.Errorw("failed to save blood donor", "user_id", donor.UserID, "err", err)
		return nil, err
	}

	writeAudit(ctx, svc.audit, donor.UserID.String(), "blood_donor", donor.DonorID.String(), "registered")
	publishEvent(ctx, svc.events, donor.UserID, "blood_donor", donor.DonorID.String(), "registered")

	return &donor, nil
}

// SearchBloodDonors returns available donors, filtered by exact blood
// group when bloodGroup is non-empty and by case-insensitive location
// substring when location is non-empty.
func (svc *DonorService) SearchBloodDonors(ctx context.Context, bloodGroup, location string) ([]models.BloodDonor, error) {
	if bloodGroup != "" && !validBloodGroup(bloodGroup) {
		return nil, ErrInvalidBloodGroup
	}

	donors, err := svc.bloodReader.List(ctx, bloodGroup)
	if err != nil {
		logger.Log.Errorw("failed to list blood donors", "blood_group", bloodGroup, "err", err)
		return nil, err
	}

	needle := strings.ToLower(location)
	matched := make([]models.BloodDonor, 0, len(donors))
	for _, donor := range donors {
		if !donor.Available {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(donor.Location), needle) {
			continue
		}
		matched = append(matched, donor)
	}
	return matched, nil
}

// GetDonorStatus returns the user's own blood donor registration,
// including its availability flag.
func (svc *DonorService) GetDonorStatus(ctx context.Context, userID uuid.UUID) (*models.BloodDonor, error) {
	donor, err := svc.bloodReader.GetByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get donor status", "user_id", userID, "err", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}
	return donor, nil
}

// SetDonorAvailability flips the available flag on the user's blood
// donor registration.
func (svc *DonorService) SetDonorAvailability(ctx context.Context, userID uuid.UUID, available bool) error {
	ok, err := svc.bloodWriter.SetAvailability(ctx, userID, available)
	if err != nil {
		logger.Log.Errorw("failed to set donor availability", "user_id", userID, "err", err)
		return err
	}
	if !ok {
		return ErrDonorNotFound
	}

	writeAudit(ctx, svc.audit, userID.String(), "blood_donor", userID.String(), "availability_updated")
	return nil
}

// RegisterOrganDonor records an organ donation pledge for
// donor.UserID and publishes a registration event.
func (svc *DonorService) RegisterOrganDonor(ctx context.Context, donor models.OrganDonor) (*models.OrganDonor, error) {
	if len(donor.Organs) == 0 {
		return nil, ErrNoOrgansSelected
	}

	donor.DonorID = uuid.New()
	donor.RegisteredDate = time.Now().Format("2006-01-02")
	donor.Status = models.OrganDonorActive

	if err := svc.organWriter.Save(ctx, donor); err != nil {
		logger.Log.Errorw("failed to save organ donor", "user_id", donor.UserID, "err", err)
		return nil, err
	}

	writeAudit(ctx, svc.audit, donor.UserID.String(), "organ_donor", donor.DonorID.String(), "registered")
	publishEvent(ctx, svc.events, donor.UserID, "organ_donor", donor.DonorID.String(), "registered")

	return &donor, nil
}

func validBloodGroup(group string) bool {
	for _, g := range models.BloodGroups {
		if g == group {
			return true
		}
	}
	return false
}
