package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/middlewares"
	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/services"
)

// HealthRecordAdder defines the interface that the health record
// service must implement.
type HealthRecordAdder interface {
	AddHealthRecord(ctx context.Context, rec models.HealthRecord) (*models.HealthRecord, error)
}

// AddHealthRecordRequest represents the JSON body for logging vitals.
// Every measurement is optional; an empty date defaults to today.
// swagger:model AddHealthRecordRequest
type AddHealthRecordRequest struct {
	// Record date, YYYY-MM-DD
	// default: 2024-01-15
	Date string `json:"date"`

	// Heart rate, bpm
	// default: 72
	HeartRate string `json:"heart_rate"`

	// Blood pressure
	// default: 120/80
	BloodPressure string `json:"blood_pressure"`

	// Weight, kg
	Weight string `json:"weight"`

	// Height, cm
	Height string `json:"height"`

	// Body temperature
	Temperature string `json:"temperature"`

	// Free-text notes
	Notes string `json:"notes"`
}

// NewAddHealthRecordHandler returns an HTTP handler for logging one
// vitals entry for the authenticated user.
// @Summary Log health record
// @Description Persists one vitals entry for the authenticated user
// @Tags health-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param addHealthRecordRequest body handlers.AddHealthRecordRequest true "Health record"
// @Success 201 {object} models.HealthRecord "Record created"
// @Failure 400 {object} handlers.ErrorResponse "Empty record / invalid request"
// @Failure 401 "Missing or invalid token"
// @Router /health-records [post]
func NewAddHealthRecordHandler(svc HealthRecordAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req AddHealthRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		rec, err := svc.AddHealthRecord(r.Context(), models.HealthRecord{
			UserID:        userID,
			Date:          req.Date,
			HeartRate:     req.HeartRate,
			BloodPressure: req.BloodPressure,
			Weight:        req.Weight,
			Height:        req.Height,
			Temperature:   req.Temperature,
			Notes:         req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyHealthRecord):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: msgTryAgain})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rec)
	}
}
