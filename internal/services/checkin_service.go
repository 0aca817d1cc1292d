package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fdumary/doctor-ai/internal/database"
	"github.com/fdumary/doctor-ai/internal/domain"
	"github.com/fdumary/doctor-ai/internal/utils"
)

// CheckInService persists daily check-ins. History is append-only; records
// are never updated after creation.
type CheckInService struct {
	db *gorm.DB
}

func NewCheckInService(db *gorm.DB) *CheckInService {
	return &CheckInService{db: db}
}

// AddRecord appends one check-in for a user. An empty date gets today's
// label.
func (s *CheckInService) AddRecord(ctx context.Context, userID string, data domain.DailyData) error {
	if data.Date == "" {
		data.Date = utils.TodayLabel()
	}

	record := &database.CheckInRecord{
		UserID:    userID,
		BodyFeel:  data.BodyFeel,
		Movement:  data.Movement,
		Food:      data.Food,
		Stress:    data.Stress,
		Sleep:     data.Sleep,
		DateLabel: data.Date,
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create check-in record: %w", err)
	}

	return nil
}

// GetUserHistory returns a user's check-ins oldest-first, matching the
// most-recent-last ordering of the in-session history.
func (s *CheckInService) GetUserHistory(ctx context.Context, userID string) ([]domain.DailyData, error) {
	var records []database.CheckInRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get user check-in history: %w", err)
	}

	history := make([]domain.DailyData, 0, len(records))
	for _, record := range records {
		history = append(history, domain.DailyData{
			BodyFeel: record.BodyFeel,
			Movement: record.Movement,
			Food:     record.Food,
			Stress:   record.Stress,
			Sleep:    record.Sleep,
			Date:     record.DateLabel,
		})
	}
	return history, nil
}
