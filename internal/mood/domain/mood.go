package domain

import (
	"time"

	authdomain "diario-backend/internal/auth/domain"
)

// MoodEntry is one logged mood. Entries are append-only; the "current" mood
// of an identity is simply its most recent entry.
type MoodEntry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`

	// Author carries the display name embedded in list payloads. Optional:
	// callers fall back to the active identity when absent.
	Author *authdomain.User `json:"author,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
