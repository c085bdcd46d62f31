package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUserNotFound       = errors.New("user not found")
)

// Registration input validation. Phone allows an optional leading "+"
// and 10-15 digits.
var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

const minPasswordLength = 6

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.User) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string, age int, gender, bloodGroup string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) (bool, error)
}

// TokenGenerator issues signed session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (token string, sessionID string, err error)
}

// SessionWriter registers and invalidates server-side sessions.
type SessionWriter interface {
	Create(ctx context.Context, userID uuid.UUID, sessionID string) error
	Delete(ctx context.Context, userID uuid.UUID, sessionID string) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	tokens   TokenGenerator
	sessions SessionWriter
	audit    AuditWriter
}

// NewAuthService creates a new AuthService instance. audit may be nil.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator, sessions SessionWriter, audit AuditWriter) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		sessions: sessions,
		audit:    audit,
	}
}

// Register creates a new user account and opens a session. The email
// must be unused; the password is bcrypt-hashed and never stored in
// plaintext.
func (svc *AuthService) Register(ctx context.Context, name, email, phone string, age int, gender, bloodGroup, password string) (*models.User, string, error) {
	if !emailPattern.MatchString(email) {
		return nil, "", ErrInvalidEmail
	}
	if !phonePattern.MatchString(phone) {
		return nil, "", ErrInvalidPhone
	}
	if len(password) < minPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email uniqueness", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, "", ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user := models.User{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Age:          age,
		Gender:       gender,
		BloodGroup:   bloodGroup,
		PasswordHash: string(hashedPassword),
		CreatedDate:  time.Now().Format("2006-01-02"),
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.openSession(ctx, user.UserID)
	if err != nil {
		return nil, "", err
	}

	writeAudit(ctx, svc.audit, user.UserID.String(), "user", user.UserID.String(), "registered")

	return &user, token, nil
}

// Login authenticates by email and password and opens a session. A
// wrong email and a wrong password fail identically.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("login with unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.openSession(ctx, user.UserID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Logout invalidates the session behind the presented token.
func (svc *AuthService) Logout(ctx context.Context, userID uuid.UUID, sessionID string) error {
	if err := svc.sessions.Delete(ctx, userID, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	return nil
}

func (svc *AuthService) openSession(ctx context.Context, userID uuid.UUID) (string, error) {
	token, sessionID, err := svc.tokens.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}
	if err := svc.sessions.Create(ctx, userID, sessionID); err != nil {
		logger.Log.Errorw("failed to create session", "err", err)
		return "", err
	}
	return token, nil
}
