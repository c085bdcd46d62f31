package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/services"
)

func TestPharmacyService_ListPharmacies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPharmacyReader(ctrl)

	svc := services.NewPharmacyService(mockReader)

	t.Run("directory returned", func(t *testing.T) {
		pharmacies := []models.Pharmacy{
			{Name: "City Pharmacy", Address: "1 Main St", Hours: "9-18"},
			{Name: "Night Owl Pharmacy", Address: "2 Elm St", Hours: "24/7"},
		}
		mockReader.EXPECT().
			List(gomock.Any()).
			Return(pharmacies, nil)

		got, err := svc.ListPharmacies(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, pharmacies, got)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("read error"))

		got, err := svc.ListPharmacies(context.Background())
		assert.EqualError(t, err, "read error")
		assert.Nil(t, got)
	})
}
