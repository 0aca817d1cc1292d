package server

import (
	"context"
	"fmt"

	"github.com/fdumary/doctor-ai/internal/domain"
	apperrors "github.com/fdumary/doctor-ai/internal/errors"
)

// fakeAccountService mimics the auth backend in memory, including its local
// validation, so handler tests exercise the error mapping.
type fakeAccountService struct {
	accounts map[string]domain.Account // by email
	nextID   int
}

func newFakeAccountService() *fakeAccountService {
	return &fakeAccountService{accounts: make(map[string]domain.Account)}
}

func (f *fakeAccountService) Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, error) {
	if len(input.Password) < 8 {
		return nil, apperrors.NewValidationError("Password must be at least 8 characters")
	}
	if _, exists := f.accounts[input.Email]; exists {
		return nil, apperrors.ErrAccountExists
	}
	f.nextID++
	account := domain.Account{
		UserID: fmt.Sprintf("user-%d", f.nextID),
		Name:   input.Name,
		Email:  input.Email,
		Role:   input.Role,
	}
	f.accounts[input.Email] = account
	return &account, nil
}

func (f *fakeAccountService) SignIn(ctx context.Context, email, password string) (*domain.Account, error) {
	account, exists := f.accounts[email]
	if !exists {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &account, nil
}

func (f *fakeAccountService) SignOut(ctx context.Context, userID string) error { return nil }

func (f *fakeAccountService) UpdateEmail(ctx context.Context, userID, newEmail string) error {
	return nil
}

func (f *fakeAccountService) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.NewValidationError("Password must be at least 8 characters")
	}
	return nil
}

func (f *fakeAccountService) EnrollSecondFactor(ctx context.Context, userID string) (string, error) {
	return "otpauth://totp/DoctorAI:test?secret=SECRET&issuer=DoctorAI", nil
}

// fakeCheckInService keeps histories in memory.
type fakeCheckInService struct {
	histories map[string][]domain.DailyData
}

func newFakeCheckInService() *fakeCheckInService {
	return &fakeCheckInService{histories: make(map[string][]domain.DailyData)}
}

func (f *fakeCheckInService) AddRecord(ctx context.Context, userID string, data domain.DailyData) error {
	f.histories[userID] = append(f.histories[userID], data)
	return nil
}

func (f *fakeCheckInService) GetUserHistory(ctx context.Context, userID string) ([]domain.DailyData, error) {
	return f.histories[userID], nil
}

// fakePreferenceService stores settings in memory with the documented
// defaults.
type fakePreferenceService struct {
	prefs map[string]domain.Preferences
}

func newFakePreferenceService() *fakePreferenceService {
	return &fakePreferenceService{prefs: make(map[string]domain.Preferences)}
}

func (f *fakePreferenceService) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	if p, exists := f.prefs[userID]; exists {
		return p, nil
	}
	return domain.Preferences{FontSize: domain.DefaultFontSize, ZoomLevel: domain.DefaultZoomLevel}, nil
}

func (f *fakePreferenceService) SavePreferences(ctx context.Context, userID string, prefs domain.Preferences) error {
	f.prefs[userID] = prefs
	return nil
}
