package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/carelink-portal/internal/models"
)

func setupTables(t *testing.T) *Tables {
	t.Helper()

	tables := NewTables(t.TempDir())
	require.NoError(t, tables.EnsureSchema())
	return tables
}

func TestUserRepository_SaveAndGet(t *testing.T) {
	tables := setupTables(t)
	reader := NewUserReadRepository(tables.Users)
	writer := NewUserWriteRepository(tables.Users)

	ctx := context.Background()
	user := models.User{
		UserID:       uuid.New(),
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "+15550123456",
		Age:          34,
		Gender:       "Female",
		BloodGroup:   "O+",
		PasswordHash: "$2a$10$hash",
		CreatedDate:  "2024-01-15",
	}

	require.NoError(t, writer.Save(ctx, user))

	t.Run("get by email", func(t *testing.T) {
		got, err := reader.GetByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user, *got)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := reader.GetByID(ctx, user.UserID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("unknown email returns nil", func(t *testing.T) {
		got, err := reader.GetByEmail(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		got, err := reader.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUserRepository_FieldsWithCommasAndQuotes(t *testing.T) {
	tables := setupTables(t)
	reader := NewUserReadRepository(tables.Users)
	writer := NewUserWriteRepository(tables.Users)

	ctx := context.Background()
	user := models.User{
		UserID:      uuid.New(),
		Name:        `Doe, Jane "JJ"`,
		Email:       "jj@example.com",
		CreatedDate: "2024-01-15",
	}

	require.NoError(t, writer.Save(ctx, user))

	got, err := reader.GetByEmail(ctx, "jj@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `Doe, Jane "JJ"`, got.Name)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	tables := setupTables(t)
	reader := NewUserReadRepository(tables.Users)
	writer := NewUserWriteRepository(tables.Users)

	ctx := context.Background()
	user := models.User{
		UserID:      uuid.New(),
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+15550123456",
		Age:         34,
		CreatedDate: "2024-01-15",
	}
	require.NoError(t, writer.Save(ctx, user))

	t.Run("existing user", func(t *testing.T) {
		ok, err := writer.UpdateProfile(ctx, user.UserID, "Jane Smith", "+15550129999", 35, "Female", "A-")
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := reader.GetByID(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", got.Name)
		assert.Equal(t, 35, got.Age)
		assert.Equal(t, "A-", got.BloodGroup)
		// email is not editable
		assert.Equal(t, "jane@example.com", got.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		ok, err := writer.UpdateProfile(ctx, uuid.New(), "Nobody", "+15550120000", 20, "", "")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	tables := setupTables(t)
	reader := NewUserReadRepository(tables.Users)
	writer := NewUserWriteRepository(tables.Users)

	ctx := context.Background()
	user := models.User{
		UserID:       uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: "old-hash",
		CreatedDate:  "2024-01-15",
	}
	require.NoError(t, writer.Save(ctx, user))

	ok, err := writer.UpdatePassword(ctx, user.UserID, "new-hash")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := reader.GetByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.PasswordHash)
}
