package repository

import "diario-backend/internal/mood/domain"

// MoodRepository defines the interface for mood entry data access
type MoodRepository interface {
	// Create inserts a new entry scoped to its author
	Create(entry *domain.MoodEntry) error

	// ListDesc returns every entry in descending created-at order with the
	// author association loaded
	ListDesc() ([]*domain.MoodEntry, error)
}
