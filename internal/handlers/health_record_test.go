package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/services"
)

func TestAddHealthRecordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockHealthRecordAdder(ctrl)
		mockSvc.EXPECT().
			AddHealthRecord(gomock.Any(), gomock.Any()).
			Return(&models.HealthRecord{
				RecordID:  uuid.New(),
				UserID:    userID,
				Date:      "2024-01-15",
				HeartRate: "72",
			}, nil)

		body, _ := json.Marshal(AddHealthRecordRequest{Date: "2024-01-15", HeartRate: "72"})
		rec := httptest.NewRecorder()
		NewAddHealthRecordHandler(mockSvc).ServeHTTP(rec, authedRequest(http.MethodPost, "/health-records", body, userID))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var record models.HealthRecord
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&record))
		assert.Equal(t, "72", record.HeartRate)
	})

	t.Run("empty record", func(t *testing.T) {
		mockSvc := NewMockHealthRecordAdder(ctrl)
		mockSvc.EXPECT().
			AddHealthRecord(gomock.Any(), gomock.Any()).
			Return(nil, services.ErrEmptyHealthRecord)

		body, _ := json.Marshal(AddHealthRecordRequest{})
		rec := httptest.NewRecorder()
		NewAddHealthRecordHandler(mockSvc).ServeHTTP(rec, authedRequest(http.MethodPost, "/health-records", body, userID))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := NewMockHealthRecordAdder(ctrl)

		rec := httptest.NewRecorder()
		NewAddHealthRecordHandler(mockSvc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health-records", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListHealthRecordsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockSvc := NewMockHealthRecordLister(ctrl)
	mockSvc.EXPECT().
		ListHealthRecords(gomock.Any(), userID).
		Return([]models.HealthRecord{
			{RecordID: uuid.New(), UserID: userID, Date: "2024-01-01"},
			{RecordID: uuid.New(), UserID: userID, Date: "2024-01-15"},
		}, nil)

	rec := httptest.NewRecorder()
	NewListHealthRecordsHandler(mockSvc).ServeHTTP(rec, authedRequest(http.MethodGet, "/health-records", nil, userID))

	assert.Equal(t, http.StatusOK, rec.Code)
	var records []models.HealthRecord
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&records))
	assert.Len(t, records, 2)
}
