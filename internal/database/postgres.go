package database

import (
	"fmt"

	"github.com/fdumary/doctor-ai/internal/config"
	"github.com/fdumary/doctor-ai/internal/database/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AccountRecord is a stored identity. Accounts created through the signup
// shim are pre-confirmed so the client can sign in right away.
type AccountRecord struct {
	gorm.Model
	UserID         string `gorm:"uniqueIndex"`
	Email          string `gorm:"uniqueIndex"`
	PasswordHash   string
	Name           string
	Role           string
	EmailConfirmed bool
	MFASecret      string
	MFAEnabled     bool
}

// CheckInRecord is one persisted daily check-in. Rows are append-only.
type CheckInRecord struct {
	gorm.Model
	UserID    string `gorm:"index"`
	BodyFeel  string
	Movement  string
	Food      string
	Stress    string
	Sleep     string
	DateLabel string
}

// PreferenceRecord stores the two accessibility settings per user.
type PreferenceRecord struct {
	gorm.Model
	UserID    string `gorm:"uniqueIndex"`
	FontSize  string `gorm:"default:medium"`
	ZoomLevel int    `gorm:"default:100"`
}

func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Picks up columns added after the registered baseline migration.
	if err := db.AutoMigrate(&AccountRecord{}, &CheckInRecord{}, &PreferenceRecord{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	return db, nil
}
