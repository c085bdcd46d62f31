package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
)

// ProfileService reads and updates the authenticated user's account.
type ProfileService struct {
	reader UserReader
	writer UserWriter
	audit  AuditWriter
}

// NewProfileService creates a new ProfileService instance. audit may be nil.
func NewProfileService(reader UserReader, writer UserWriter, audit AuditWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
		audit:  audit,
	}
}

// GetProfile returns the user's account row.
func (svc *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile overwrites the editable profile fields and returns
// the updated account row. Email is not editable.
func (svc *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string, age int, gender, bloodGroup string) (*models.User, error) {
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	ok, err := svc.writer.UpdateProfile(ctx, userID, name, phone, age, gender, bloodGroup)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	writeAudit(ctx, svc.audit, userID.String(), "user", userID.String(), "profile_updated")

	return svc.GetProfile(ctx, userID)
}

// UpdatePassword replaces the user's password after verifying the
// current one. The new password is bcrypt-hashed.
func (svc *ProfileService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		logger.Log.Errorw("current password mismatch", "user_id", userID)
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	ok, err := svc.writer.UpdatePassword(ctx, userID, string(hashed))
	if err != nil {
		logger.Log.Errorw("failed to update password", "user_id", userID, "err", err)
		return err
	}
	if !ok {
		return ErrUserNotFound
	}

	writeAudit(ctx, svc.audit, userID.String(), "user", userID.String(), "password_updated")
	return nil
}
