package repository

import "diario-backend/internal/profile/domain"

// StartDateRepository defines the interface for start date persistence
type StartDateRepository interface {
	// Get returns the stored start date for an identity, or (nil, nil)
	// when none is set
	Get(userID string) (*domain.StartDate, error)

	// Set stores or replaces the start date for an identity
	Set(userID, value string) error

	// Clear removes the stored start date for an identity
	Clear(userID string) error
}
