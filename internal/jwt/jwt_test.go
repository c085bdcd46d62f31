package jwt_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/carelink/carelink-portal/internal/jwt"
)

func TestGenerateAndParse(t *testing.T) {
	j := jwt.New("test-secret", time.Minute)
	userID := uuid.New()

	token, sessionID, err := j.Generate(context.Background(), userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, sessionID)

	claims, err := j.Parse(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, sessionID, claims.SessionID)
}

func TestParse_WrongSecret(t *testing.T) {
	j := jwt.New("secret-a", time.Minute)
	token, _, err := j.Generate(context.Background(), uuid.New())
	assert.NoError(t, err)

	other := jwt.New("secret-b", time.Minute)
	_, err = other.Parse(context.Background(), token)
	assert.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	j := jwt.New("test-secret", -time.Minute)
	token, _, err := j.Generate(context.Background(), uuid.New())
	assert.NoError(t, err)

	_, err = j.Parse(context.Background(), token)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	j := jwt.New("test-secret", time.Minute)
	_, err := j.Parse(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestGetTokenFromRequest(t *testing.T) {
	j := jwt.New("test-secret", time.Minute)

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", want: "abc123"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc123", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(context.Background(), req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
