package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fdumary/doctor-ai/internal/database"
	"github.com/fdumary/doctor-ai/internal/domain"
	apperrors "github.com/fdumary/doctor-ai/internal/errors"
)

// PreferenceService stores the two accessibility settings per user. A user
// without a stored row gets the documented defaults.
type PreferenceService struct {
	db *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// GetPreferences reads a user's settings, falling back to "medium" and 100.
func (s *PreferenceService) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	defaults := domain.Preferences{
		FontSize:  domain.DefaultFontSize,
		ZoomLevel: domain.DefaultZoomLevel,
	}

	var record database.PreferenceRecord
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaults, nil
	}
	if err != nil {
		return defaults, apperrors.NewDatabaseError(err)
	}

	prefs := defaults
	if record.FontSize != "" {
		prefs.FontSize = record.FontSize
	}
	if record.ZoomLevel != 0 {
		prefs.ZoomLevel = record.ZoomLevel
	}
	return prefs, nil
}

// SavePreferences writes both settings for a user, creating the row on first
// write.
func (s *PreferenceService) SavePreferences(ctx context.Context, userID string, prefs domain.Preferences) error {
	switch prefs.FontSize {
	case "small", "medium", "large":
	default:
		return apperrors.NewValidationError("Font size must be small, medium or large")
	}
	if prefs.ZoomLevel <= 0 {
		return apperrors.NewValidationError("Zoom level must be a positive percentage")
	}

	var record database.PreferenceRecord
	err := s.db.WithContext(ctx).
		Where(database.PreferenceRecord{UserID: userID}).
		FirstOrCreate(&record).Error
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}

	err = s.db.WithContext(ctx).Model(&record).
		Updates(map[string]interface{}{
			"font_size":  prefs.FontSize,
			"zoom_level": prefs.ZoomLevel,
		}).Error
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
