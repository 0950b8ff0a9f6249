package usecase

import (
	authdomain "diario-backend/internal/auth/domain"
	"diario-backend/internal/reminder/domain"
)

// ReminderUsecase defines the interface for reminder business logic
type ReminderUsecase interface {
	// CreateReminder records a new reminder for the given identity.
	// remindAt, when set, is an RFC3339 timestamp for the push notification.
	CreateReminder(author *authdomain.User, text string, remindAt *string) (*domain.Reminder, error)

	// ListReminders returns all reminders, newest first
	ListReminders() ([]*domain.Reminder, error)

	// DeleteReminder removes a reminder after checking the active identity
	// is its author
	DeleteReminder(userID, reminderID string) error
}
