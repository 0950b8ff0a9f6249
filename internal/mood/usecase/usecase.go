package usecase

import (
	authdomain "diario-backend/internal/auth/domain"
	"diario-backend/internal/mood/domain"
)

// MoodUsecase defines the interface for mood log business logic
type MoodUsecase interface {
	// CreateEntry records a new mood for the given identity. At least one of
	// mood/note must be non-empty after trimming.
	CreateEntry(author *authdomain.User, mood, note string) (*domain.MoodEntry, error)

	// ListEntries returns all entries, newest first
	ListEntries() ([]*domain.MoodEntry, error)
}
