package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/carelink/carelink-portal/internal/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, SessionID: "session123"}

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener, s *MockSessionReader)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener, s *MockSessionReader) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener, s *MockSessionReader) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().Parse(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "SessionLookupError",
			mockSetup: func(m *MockTokener, s *MockSessionReader) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().Parse(gomock.Any(), "validtoken").
					Return(claims, nil)
				s.EXPECT().Exists(gomock.Any(), userID, "session123").
					Return(false, errors.New("redis down"))
			},
			expectedStatus:   http.StatusInternalServerError,
			expectNextCalled: false,
		},
		{
			name: "LoggedOutSession",
			mockSetup: func(m *MockTokener, s *MockSessionReader) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().Parse(gomock.Any(), "validtoken").
					Return(claims, nil)
				s.EXPECT().Exists(gomock.Any(), userID, "session123").
					Return(false, nil)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener, s *MockSessionReader) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().Parse(gomock.Any(), "validtoken").
					Return(claims, nil)
				s.EXPECT().Exists(gomock.Any(), userID, "session123").
					Return(true, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockSessions := NewMockSessionReader(ctrl)
			tt.mockSetup(mockTokener, mockSessions)

			// Wrap a next handler to check if it was called and what
			// identity it sees.
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				gotUser, ok := UserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, gotUser)

				gotSession, ok := SessionIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, "session123", gotSession)

				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockSessions)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)

	_, ok = SessionIDFromContext(req.Context())
	assert.False(t, ok)
}
