package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
)

// PharmacyLister defines the interface that the pharmacy service must
// implement.
type PharmacyLister interface {
	ListPharmacies(ctx context.Context) ([]models.Pharmacy, error)
}

// NewListPharmaciesHandler returns an HTTP handler for the pharmacy
// directory.
// @Summary List pharmacies
// @Description Returns the pharmacy directory
// @Tags pharmacies
// @Produce json
// @Success 200 {array} models.Pharmacy "Pharmacies returned"
// @Failure 401 {string} string "Unauthorized"
// @Security BearerAuth
// @Router /pharmacies [get]
func NewListPharmaciesHandler(svc PharmacyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pharmacies, err := svc.ListPharmacies(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: msgTryAgain})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(pharmacies)
	}
}
