package repository

import (
	"errors"
	"time"

	"diario-backend/internal/profile/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormStartDateRepository implements StartDateRepository using GORM
type gormStartDateRepository struct {
	db *gorm.DB
}

// NewGormStartDateRepository creates a new GORM-based StartDateRepository
func NewGormStartDateRepository(db *gorm.DB) StartDateRepository {
	return &gormStartDateRepository{db: db}
}

func (r *gormStartDateRepository) Get(userID string) (*domain.StartDate, error) {
	var startDate domain.StartDate
	err := r.db.Where("user_id = ?", userID).First(&startDate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &startDate, nil
}

// Set upserts the single row an identity owns
func (r *gormStartDateRepository) Set(userID, value string) error {
	startDate := &domain.StartDate{
		UserID:    userID,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(startDate).Error
}

func (r *gormStartDateRepository) Clear(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.StartDate{}).Error
}
