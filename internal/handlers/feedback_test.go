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

func TestAddFeedbackHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		reqBody      AddFeedbackRequest
		svcErr       error
		expectedCode int
	}{
		{
			name:         "success",
			reqBody:      AddFeedbackRequest{ServiceType: "Appointments", Rating: 5, Comment: "great"},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid rating",
			reqBody:      AddFeedbackRequest{ServiceType: "Appointments", Rating: 9},
			svcErr:       services.ErrInvalidRating,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing service type",
			reqBody:      AddFeedbackRequest{Rating: 4},
			svcErr:       services.ErrMissingServiceType,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFeedbackAdder(ctrl)
			if tt.svcErr != nil {
				mockSvc.EXPECT().
					AddFeedback(gomock.Any(), gomock.Any()).
					Return(nil, tt.svcErr)
			} else {
				mockSvc.EXPECT().
					AddFeedback(gomock.Any(), gomock.Any()).
					Return(&models.Feedback{
						FeedbackID:  uuid.New(),
						UserID:      userID,
						ServiceType: tt.reqBody.ServiceType,
						Rating:      tt.reqBody.Rating,
					}, nil)
			}

			body, _ := json.Marshal(tt.reqBody)
			rec := httptest.NewRecorder()
			NewAddFeedbackHandler(mockSvc).ServeHTTP(rec, authedRequest(http.MethodPost, "/feedback", body, userID))

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
