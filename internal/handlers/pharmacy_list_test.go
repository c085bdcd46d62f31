package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/carelink/carelink-portal/internal/models"
)

func TestListPharmaciesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockPharmacyLister(ctrl)
		mockSvc.EXPECT().
			ListPharmacies(gomock.Any()).
			Return([]models.Pharmacy{
				{Name: "City Pharmacy", Address: "1 Main St"},
				{Name: "Night Owl Pharmacy", Address: "2 Elm St"},
			}, nil)

		rec := httptest.NewRecorder()
		NewListPharmaciesHandler(mockSvc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pharmacies", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var pharmacies []models.Pharmacy
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&pharmacies))
		assert.Len(t, pharmacies, 2)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockPharmacyLister(ctrl)
		mockSvc.EXPECT().
			ListPharmacies(gomock.Any()).
			Return(nil, errors.New("read error"))

		rec := httptest.NewRecorder()
		NewListPharmaciesHandler(mockSvc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pharmacies", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
