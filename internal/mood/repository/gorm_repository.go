package repository

import (
	"time"

	"diario-backend/internal/mood/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormMoodRepository implements MoodRepository using GORM
type gormMoodRepository struct {
	db *gorm.DB
}

// NewGormMoodRepository creates a new GORM-based MoodRepository
func NewGormMoodRepository(db *gorm.DB) MoodRepository {
	return &gormMoodRepository{db: db}
}

func (r *gormMoodRepository) Create(entry *domain.MoodEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *gormMoodRepository) ListDesc() ([]*domain.MoodEntry, error) {
	var entries []*domain.MoodEntry
	err := r.db.Preload("Author").Order("created_at DESC").Find(&entries).Error
	return entries, err
}
