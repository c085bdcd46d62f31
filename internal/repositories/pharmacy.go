package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/storage"
)

// PharmacyReadRepository reads the seeded pharmacy directory.
type PharmacyReadRepository struct {
	table *storage.Table
}

func NewPharmacyReadRepository(table *storage.Table) *PharmacyReadRepository {
	return &PharmacyReadRepository{table: table}
}

// List returns every pharmacy in insertion order.
func (r *PharmacyReadRepository) List(ctx context.Context) ([]models.Pharmacy, error) {
	rows, err := r.table.ReadAll()
	if err != nil {
		logger.Log.Errorw("pharmacies read failed", "error", err)
		return nil, err
	}

	pharmacies := make([]models.Pharmacy, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row["pharmacy_id"])
		if err != nil {
			return nil, fmt.Errorf("malformed pharmacy row: %w", err)
		}
		pharmacies = append(pharmacies, models.Pharmacy{
			PharmacyID: id,
			Name:       row["name"],
			Address:    row["address"],
			Phone:      row["phone"],
			Hours:      row["hours"],
			Services:   row["services"],
		})
	}
	return pharmacies, nil
}
