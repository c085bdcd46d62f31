package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
)

// BloodDonorSearcher defines the interface that the donor service
// must implement.
type BloodDonorSearcher interface {
	SearchBloodDonors(ctx context.Context, bloodGroup, location string) ([]models.BloodDonor, error)
}

// NewSearchBloodDonorsHandler returns an HTTP handler for searching
// available blood donors by group and location.
// @Summary Search blood donors
// @Description Returns available donors, optionally filtered by blood group and location substring
// @Tags donors
// @Produce json
// @Security BearerAuth
// @Param blood_group query string false "Exact blood group, e.g. O+"
// @Param location query string false "Case-insensitive location substring"
// @Success 200 {array} models.BloodDonor "Donors returned"
// @Failure 401 "Missing or invalid token"
// @Router /donors/blood [get]
func NewSearchBloodDonorsHandler(svc BloodDonorSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bloodGroup := r.URL.Query().Get("blood_group")
		location := r.URL.Query().Get("location")

		donors, err := svc.SearchBloodDonors(r.Context(), bloodGroup, location)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: msgTryAgain})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(donors)
	}
}
