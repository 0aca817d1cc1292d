package services

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fdumary/doctor-ai/internal/database"
	"github.com/fdumary/doctor-ai/internal/domain"
	apperrors "github.com/fdumary/doctor-ai/internal/errors"
	"github.com/fdumary/doctor-ai/internal/logger"
)

const minPasswordLength = 8

// AccountService is the hosted authentication backend: it creates
// pre-confirmed accounts, verifies password sign-ins and manages account
// credentials.
type AccountService struct {
	db         *gorm.DB
	bcryptCost int
	totpIssuer string
}

func NewAccountService(db *gorm.DB, bcryptCost int, totpIssuer string) *AccountService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{db: db, bcryptCost: bcryptCost, totpIssuer: totpIssuer}
}

// Register creates a pre-confirmed account. Validation happens before any
// database work so a rejected call leaves nothing behind.
func (s *AccountService) Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	var existing database.AccountRecord
	err := s.db.WithContext(ctx).Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrAccountExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewDatabaseError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	record := database.AccountRecord{
		UserID:       uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         string(input.Role),
		// No email server is configured; confirm on creation so the client
		// can sign in with the same credentials immediately.
		EmailConfirmed: true,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	logger.Infof("Account created: %s (%s)", record.UserID, record.Role)
	return accountFromRecord(record), nil
}

// SignIn verifies email/password credentials.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("Email and password are required")
	}

	var record database.AccountRecord
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return accountFromRecord(record), nil
}

// SignOut ends the user's authenticated state. Tokens live client-side here,
// so there is nothing to invalidate beyond confirming the account exists.
func (s *AccountService) SignOut(ctx context.Context, userID string) error {
	if _, err := s.findByUserID(ctx, userID); err != nil {
		return err
	}
	logger.Infof("User signed out: %s", userID)
	return nil
}

// UpdateEmail replaces the account email.
func (s *AccountService) UpdateEmail(ctx context.Context, userID, newEmail string) error {
	if !strings.Contains(newEmail, "@") {
		return apperrors.NewValidationError("A valid email address is required")
	}
	if _, err := s.findByUserID(ctx, userID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Model(&database.AccountRecord{}).
		Where("user_id = ?", userID).
		Update("email", newEmail).Error
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// UpdatePassword replaces the account password.
func (s *AccountService) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}
	if _, err := s.findByUserID(ctx, userID); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	err = s.db.WithContext(ctx).Model(&database.AccountRecord{}).
		Where("user_id = ?", userID).
		Update("password_hash", string(hash)).Error
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// EnrollSecondFactor generates a TOTP secret for the account and returns the
// otpauth provisioning URI the client renders as a QR code.
func (s *AccountService) EnrollSecondFactor(ctx context.Context, userID string) (string, error) {
	record, err := s.findByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	secret, err := generateTOTPSecret()
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}

	err = s.db.WithContext(ctx).Model(&database.AccountRecord{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"mfa_secret": secret, "mfa_enabled": true}).Error
	if err != nil {
		return "", apperrors.NewDatabaseError(err)
	}

	uri := fmt.Sprintf("otpauth://totp/%s:%s?secret=%s&issuer=%s",
		url.PathEscape(s.totpIssuer), url.PathEscape(record.Email), secret, url.QueryEscape(s.totpIssuer))
	return uri, nil
}

func (s *AccountService) findByUserID(ctx context.Context, userID string) (*database.AccountRecord, error) {
	var record database.AccountRecord
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return &record, nil
}

func validateRegisterInput(input domain.RegisterInput) error {
	if input.Email == "" || input.Password == "" || input.Name == "" || input.Role == "" {
		return apperrors.NewValidationError("Missing required fields")
	}
	if input.Role != domain.RolePatient && input.Role != domain.RoleDoctor {
		return apperrors.NewValidationError("Role must be patient or doctor")
	}
	if len(input.Password) < minPasswordLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}
	return nil
}

func accountFromRecord(record database.AccountRecord) *domain.Account {
	return &domain.Account{
		UserID: record.UserID,
		Name:   record.Name,
		Email:  record.Email,
		Role:   domain.Role(record.Role),
	}
}

func generateTOTPSecret() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}
