package repositories

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
	"github.com/carelink/carelink-portal/internal/storage"
)

// UserReadRepository reads user rows from the users table.
type UserReadRepository struct {
	table *storage.Table
}

func NewUserReadRepository(table *storage.Table) *UserReadRepository {
	return &UserReadRepository{table: table}
}

// GetByEmail returns the user with the given email, or nil when no
// row matches. Email is unique by the creation-time check in the
// auth service; the first match wins.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	rows, err := r.table.ReadAll()
	if err != nil {
		logger.Log.Errorw("users read failed", "op", "GetByEmail", "error", err)
		return nil, err
	}

	for _, row := range rows {
		if row["email"] == email {
			return userFromRow(row)
		}
	}
	return nil, nil
}

// GetByID returns the user with the given id, or nil when no row matches.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	rows, err := r.table.ReadAll()
	if err != nil {
		logger.Log.Errorw("users read failed", "op", "GetByID", "error", err)
		return nil, err
	}

	key := userID.String()
	for _, row := range rows {
		if row["user_id"] == key {
			return userFromRow(row)
		}
	}
	return nil, nil
}

// UserWriteRepository appends and updates user rows.
type UserWriteRepository struct {
	table *storage.Table
}

func NewUserWriteRepository(table *storage.Table) *UserWriteRepository {
	return &UserWriteRepository{table: table}
}

// Save appends one user row.
func (r *UserWriteRepository) Save(ctx context.Context, user models.User) error {
	err := r.table.Append(userToRow(user))
	logger.Log.Infow("user saved",
		"user_id", user.UserID,
		"email", user.Email,
		"error", err,
	)
	return err
}

// UpdateProfile overwrites the editable profile fields of the user
// row. Returns false when the user id is not present.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string, age int, gender, bloodGroup string) (bool, error) {
	ok, err := r.table.Update("user_id", userID.String(), storage.Row{
		"name":        name,
		"phone":       phone,
		"age":         strconv.Itoa(age),
		"gender":      gender,
		"blood_group": bloodGroup,
	})
	logger.Log.Infow("user profile updated",
		"user_id", userID,
		"found", ok,
		"error", err,
	)
	return ok, err
}

// UpdatePassword replaces the stored password hash. Returns false
// when the user id is not present.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) (bool, error) {
	ok, err := r.table.Update("user_id", userID.String(), storage.Row{
		"password_hash": passwordHash,
	})
	logger.Log.Infow("user password updated",
		"user_id", userID,
		"found", ok,
		"error", err,
	)
	return ok, err
}

func userToRow(u models.User) storage.Row {
	return storage.Row{
		"user_id":       u.UserID.String(),
		"name":          u.Name,
		"email":         u.Email,
		"phone":         u.Phone,
		"age":           strconv.Itoa(u.Age),
		"gender":        u.Gender,
		"blood_group":   u.BloodGroup,
		"password_hash": u.PasswordHash,
		"created_date":  u.CreatedDate,
	}
}

func userFromRow(row storage.Row) (*models.User, error) {
	id, err := uuid.Parse(row["user_id"])
	if err != nil {
		return nil, fmt.Errorf("malformed user row: %w", err)
	}
	age, _ := strconv.Atoi(row["age"])
	return &models.User{
		UserID:       id,
		Name:         row["name"],
		Email:        row["email"],
		Phone:        row["phone"],
		Age:          age,
		Gender:       row["gender"],
		BloodGroup:   row["blood_group"],
		PasswordHash: row["password_hash"],
		CreatedDate:  row["created_date"],
	}, nil
}
