package usecase

import (
	"errors"
	"strings"
	"time"

	authdomain "diario-backend/internal/auth/domain"
	"diario-backend/internal/reminder/domain"
	"diario-backend/internal/reminder/repository"
)

var (
	// ErrEmptyText means the reminder text was blank after trimming
	ErrEmptyText = errors.New("reminder text is required")

	// ErrNotFound means no reminder exists with the given id
	ErrNotFound = errors.New("reminder not found")

	// ErrNotAuthor means the active identity did not create the reminder
	ErrNotAuthor = errors.New("only the author can delete a reminder")
)

// reminderUsecase implements ReminderUsecase interface
type reminderUsecase struct {
	reminderRepo repository.ReminderRepository
}

// NewReminderUsecase creates a new instance of reminderUsecase
func NewReminderUsecase(reminderRepo repository.ReminderRepository) ReminderUsecase {
	return &reminderUsecase{reminderRepo: reminderRepo}
}

func (u *reminderUsecase) CreateReminder(author *authdomain.User, text string, remindAt *string) (*domain.Reminder, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	reminder := &domain.Reminder{
		UserID: author.ID,
		Text:   text,
	}

	if remindAt != nil && *remindAt != "" {
		if t, err := time.Parse(time.RFC3339, *remindAt); err == nil {
			reminder.RemindAt = &t
		}
	}

	if err := u.reminderRepo.Create(reminder); err != nil {
		return nil, err
	}

	if reminder.Author == nil {
		reminder.Author = author
	}

	return reminder, nil
}

func (u *reminderUsecase) ListReminders() ([]*domain.Reminder, error) {
	return u.reminderRepo.ListDesc()
}

// DeleteReminder checks authorship up front instead of relying on the
// filtered delete silently matching nothing.
func (u *reminderUsecase) DeleteReminder(userID, reminderID string) error {
	reminder, err := u.reminderRepo.FindByID(reminderID)
	if err != nil {
		return err
	}
	if reminder == nil {
		return ErrNotFound
	}
	if reminder.UserID != userID {
		return ErrNotAuthor
	}

	// The delete stays filtered by id and author as a second guard
	return u.reminderRepo.DeleteByIDAndAuthor(reminderID, userID)
}
