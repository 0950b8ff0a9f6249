package repository

import (
	"time"

	"diario-backend/internal/reminder/domain"
)

// ReminderRepository defines the interface for reminder data access
type ReminderRepository interface {
	// Create inserts a new reminder scoped to its author
	Create(reminder *domain.Reminder) error

	// FindByID finds a reminder by its ID. Returns (nil, nil) when not found.
	FindByID(id string) (*domain.Reminder, error)

	// ListDesc returns every reminder in descending created-at order with
	// the author association loaded
	ListDesc() ([]*domain.Reminder, error)

	// DeleteByIDAndAuthor deletes only when both the id and the author
	// match, mirroring the remote delete filter
	DeleteByIDAndAuthor(id, userID string) error

	// FindPendingReminders finds reminders whose push is due:
	// remind_at <= now AND reminder_sent = false
	FindPendingReminders(now time.Time) ([]*domain.Reminder, error)

	// MarkReminderSent marks a reminder's push as sent
	MarkReminderSent(id string) error
}
