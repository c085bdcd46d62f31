package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/services"
)

func TestFeedbackService_AddFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockFeedbackWriter(ctrl)

	svc := services.NewFeedbackService(mockWriter, nil)

	userID := uuid.New()

	tests := []struct {
		name      string
		fb        models.Feedback
		writerErr error
		wantErr   error
	}{
		{
			name: "successful feedback",
			fb:   models.Feedback{UserID: userID, ServiceType: "Appointments", Rating: 5, Comment: "great"},
		},
		{
			name: "lowest valid rating",
			fb:   models.Feedback{UserID: userID, ServiceType: "Appointments", Rating: 1},
		},
		{
			name:    "rating too low",
			fb:      models.Feedback{UserID: userID, ServiceType: "Appointments", Rating: 0},
			wantErr: services.ErrInvalidRating,
		},
		{
			name:    "rating too high",
			fb:      models.Feedback{UserID: userID, ServiceType: "Appointments", Rating: 6},
			wantErr: services.ErrInvalidRating,
		},
		{
			name:    "missing service type",
			fb:      models.Feedback{UserID: userID, Rating: 4},
			wantErr: services.ErrMissingServiceType,
		},
		{
			name:      "writer error",
			fb:        models.Feedback{UserID: userID, ServiceType: "Appointments", Rating: 3},
			writerErr: errors.New("write error"),
			wantErr:   errors.New("write error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == nil || tt.writerErr != nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
			}

			fb, err := svc.AddFeedback(context.Background(), tt.fb)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, fb)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, fb.FeedbackID)
				assert.NotEmpty(t, fb.Date)
			}
		})
	}
}
