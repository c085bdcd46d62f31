package services

import (
	"context"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
)

// PharmacyReader defines read operations for the pharmacy directory.
type PharmacyReader interface {
	List(ctx context.Context) ([]models.Pharmacy, error)
}

// PharmacyService serves the seeded pharmacy directory.
type PharmacyService struct {
	reader PharmacyReader
}

// NewPharmacyService creates a new PharmacyService instance.
func NewPharmacyService(reader PharmacyReader) *PharmacyService {
	return &PharmacyService{reader: reader}
}

// ListPharmacies returns the full directory.
func (svc *PharmacyService) ListPharmacies(ctx context.Context) ([]models.Pharmacy, error) {
	pharmacies, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list pharmacies", "err", err)
		return nil, err
	}
	return pharmacies, nil
}
