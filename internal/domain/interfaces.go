package domain

import "context"

// RegisterInput carries everything the signup shim accepts.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// AccountService handles identity operations against the auth backend.
// Accounts created through Register are pre-confirmed so the client can sign
// in with the same credentials immediately.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*Account, error)
	SignIn(ctx context.Context, email, password string) (*Account, error)
	SignOut(ctx context.Context, userID string) error
	UpdateEmail(ctx context.Context, userID, newEmail string) error
	UpdatePassword(ctx context.Context, userID, newPassword string) error
	EnrollSecondFactor(ctx context.Context, userID string) (string, error)
}

// CheckInService handles daily check-in persistence.
type CheckInService interface {
	AddRecord(ctx context.Context, userID string, data DailyData) error
	GetUserHistory(ctx context.Context, userID string) ([]DailyData, error)
}

// PreferenceService handles the two accessibility settings.
type PreferenceService interface {
	GetPreferences(ctx context.Context, userID string) (Preferences, error)
	SavePreferences(ctx context.Context, userID string, prefs Preferences) error
}

// PatientStore exposes the read-only patient roster for the doctor views.
type PatientStore interface {
	List() []PatientRecord
	FindByID(id string) (PatientRecord, bool)
}
