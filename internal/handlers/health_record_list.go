package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/middlewares"
	"github.com/carelink/carelink-portal/internal/models"
)

// HealthRecordLister defines the interface that the health record
// service must implement.
type HealthRecordLister interface {
	ListHealthRecords(ctx context.Context, userID uuid.UUID) ([]models.HealthRecord, error)
}

// NewListHealthRecordsHandler returns an HTTP handler for listing the
// authenticated user's health records in ascending date order.
// @Summary List health records
// @Description Returns the authenticated user's records, oldest first
// @Tags health-records
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.HealthRecord "Records returned"
// @Failure 401 "Missing or invalid token"
// @Router /health-records [get]
func NewListHealthRecordsHandler(svc HealthRecordLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		records, err := svc.ListHealthRecords(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: msgTryAgain})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(records)
	}
}
