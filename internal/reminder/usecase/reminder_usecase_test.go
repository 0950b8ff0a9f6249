package usecase

import (
	"testing"
	"time"

	authdomain "diario-backend/internal/auth/domain"
	"diario-backend/internal/reminder/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReminderRepo struct {
	byID    *domain.Reminder
	list    []*domain.Reminder
	deleted [][2]string // (id, userID) pairs
}

func (f *fakeReminderRepo) Create(reminder *domain.Reminder) error {
	reminder.ID = "generated-id"
	return nil
}

func (f *fakeReminderRepo) FindByID(id string) (*domain.Reminder, error) {
	return f.byID, nil
}

func (f *fakeReminderRepo) ListDesc() ([]*domain.Reminder, error) {
	return f.list, nil
}

func (f *fakeReminderRepo) DeleteByIDAndAuthor(id, userID string) error {
	f.deleted = append(f.deleted, [2]string{id, userID})
	return nil
}

func (f *fakeReminderRepo) FindPendingReminders(now time.Time) ([]*domain.Reminder, error) {
	return nil, nil
}

func (f *fakeReminderRepo) MarkReminderSent(id string) error { return nil }

func TestCreateReminderRequiresText(t *testing.T) {
	u := NewReminderUsecase(&fakeReminderRepo{})
	author := &authdomain.User{ID: "u1", Username: "gata"}

	_, err := u.CreateReminder(author, "   ", nil)
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestCreateReminderParsesRemindAt(t *testing.T) {
	u := NewReminderUsecase(&fakeReminderRepo{})
	author := &authdomain.User{ID: "u1", Username: "gata"}

	at := "2026-09-01T10:00:00Z"
	reminder, err := u.CreateReminder(author, " comprar flores ", &at)
	require.NoError(t, err)

	assert.Equal(t, "comprar flores", reminder.Text)
	require.NotNil(t, reminder.RemindAt)
	assert.Equal(t, 2026, reminder.RemindAt.Year())
	require.NotNil(t, reminder.Author)
	assert.Equal(t, "gata", reminder.Author.Username)
}

func TestCreateReminderIgnoresBadRemindAt(t *testing.T) {
	u := NewReminderUsecase(&fakeReminderRepo{})
	author := &authdomain.User{ID: "u1", Username: "gata"}

	at := "mañana"
	reminder, err := u.CreateReminder(author, "algo", &at)
	require.NoError(t, err)
	assert.Nil(t, reminder.RemindAt)
}

func TestDeleteReminderNotFound(t *testing.T) {
	repo := &fakeReminderRepo{byID: nil}
	u := NewReminderUsecase(repo)

	err := u.DeleteReminder("u1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.deleted)
}

func TestDeleteReminderRejectsNonAuthor(t *testing.T) {
	repo := &fakeReminderRepo{byID: &domain.Reminder{ID: "r1", UserID: "someone-else"}}
	u := NewReminderUsecase(repo)

	err := u.DeleteReminder("u1", "r1")
	assert.ErrorIs(t, err, ErrNotAuthor)
	assert.Empty(t, repo.deleted, "the list must stay unchanged")
}

func TestDeleteReminderByAuthor(t *testing.T) {
	repo := &fakeReminderRepo{byID: &domain.Reminder{ID: "r1", UserID: "u1"}}
	u := NewReminderUsecase(repo)

	require.NoError(t, u.DeleteReminder("u1", "r1"))
	require.Len(t, repo.deleted, 1)
	assert.Equal(t, [2]string{"r1", "u1"}, repo.deleted[0])
}
