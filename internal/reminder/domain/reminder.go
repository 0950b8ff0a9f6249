package domain

import (
	"time"

	authdomain "diario-backend/internal/auth/domain"
)

// Reminder is a shared note between the partners. Any session sees every
// reminder; only the author can remove one.
type Reminder struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"user_id" gorm:"index;not null"`
	Text         string     `json:"text" gorm:"not null"`
	RemindAt     *time.Time `json:"remind_at,omitempty"`                 // When to push a notification
	ReminderSent bool       `json:"reminder_sent" gorm:"default:false"` // Track if the push went out
	CreatedAt    time.Time  `json:"created_at"`

	// Author carries the display name embedded in list payloads. Optional:
	// callers fall back to the active identity when absent.
	Author *authdomain.User `json:"author,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
