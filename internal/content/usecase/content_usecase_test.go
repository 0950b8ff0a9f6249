package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	gallerydomain "diario-backend/internal/gallery/domain"
	mooddomain "diario-backend/internal/mood/domain"
	reminderdomain "diario-backend/internal/reminder/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeMoodRepo struct {
	entries []*mooddomain.MoodEntry
	err     error
}

func (f *fakeMoodRepo) Create(entry *mooddomain.MoodEntry) error { return nil }

func (f *fakeMoodRepo) ListDesc() ([]*mooddomain.MoodEntry, error) {
	return f.entries, f.err
}

type fakeReminderRepo struct {
	reminders []*reminderdomain.Reminder
	err       error
}

func (f *fakeReminderRepo) Create(reminder *reminderdomain.Reminder) error { return nil }
func (f *fakeReminderRepo) FindByID(id string) (*reminderdomain.Reminder, error) {
	return nil, nil
}
func (f *fakeReminderRepo) ListDesc() ([]*reminderdomain.Reminder, error) {
	return f.reminders, f.err
}
func (f *fakeReminderRepo) DeleteByIDAndAuthor(id, userID string) error { return nil }
func (f *fakeReminderRepo) FindPendingReminders(now time.Time) ([]*reminderdomain.Reminder, error) {
	return nil, nil
}
func (f *fakeReminderRepo) MarkReminderSent(id string) error { return nil }

type fakeGalleryRepo struct {
	items []*gallerydomain.GalleryItem
	err   error
}

func (f *fakeGalleryRepo) Create(item *gallerydomain.GalleryItem) error { return nil }
func (f *fakeGalleryRepo) FindByID(id string) (*gallerydomain.GalleryItem, error) {
	return nil, nil
}
func (f *fakeGalleryRepo) ListDesc() ([]*gallerydomain.GalleryItem, error) {
	return f.items, f.err
}
func (f *fakeGalleryRepo) DeleteByIDAndAuthor(id, userID string) error { return nil }

// ---- tests ----

func TestHydrateCollectsAllThreeLists(t *testing.T) {
	moods := &fakeMoodRepo{entries: []*mooddomain.MoodEntry{
		{ID: "m2", UserID: "u2", Mood: "cansado", Note: "trabajo"},
		{ID: "m1", UserID: "u1", Mood: "feliz", Note: "paseo"},
	}}
	reminders := &fakeReminderRepo{reminders: []*reminderdomain.Reminder{
		{ID: "r1", UserID: "u1", Text: "cine el viernes"},
	}}
	gallery := &fakeGalleryRepo{items: []*gallerydomain.GalleryItem{
		{ID: "g1", UserID: "u2", ImageURL: "https://i.example/x.jpg"},
	}}

	u := NewContentUsecase(moods, reminders, gallery)

	result, err := u.Hydrate(context.Background(), "u1")
	require.NoError(t, err)

	assert.Len(t, result.Moods, 2)
	assert.Len(t, result.Reminders, 1)
	assert.Len(t, result.Gallery, 1)

	// Current mood is the newest entry authored by u1, not by u2
	assert.Equal(t, "feliz", result.CurrentMood.Mood)
	assert.Equal(t, "paseo", result.CurrentMood.Note)
}

func TestHydrateCurrentMoodDefaultsToEmpty(t *testing.T) {
	moods := &fakeMoodRepo{entries: []*mooddomain.MoodEntry{
		{ID: "m1", UserID: "u2", Mood: "feliz"},
	}}
	u := NewContentUsecase(moods, &fakeReminderRepo{}, &fakeGalleryRepo{})

	result, err := u.Hydrate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, result.CurrentMood.Mood)
	assert.Empty(t, result.CurrentMood.Note)
}

func TestHydrateFailureAbortsTheWholeCommit(t *testing.T) {
	moods := &fakeMoodRepo{entries: []*mooddomain.MoodEntry{{ID: "m1", UserID: "u1"}}}
	reminders := &fakeReminderRepo{err: errors.New("connection reset")}
	gallery := &fakeGalleryRepo{items: []*gallerydomain.GalleryItem{{ID: "g1"}}}

	u := NewContentUsecase(moods, reminders, gallery)

	result, err := u.Hydrate(context.Background(), "u1")
	require.Error(t, err)
	assert.Nil(t, result, "no partial payload on failure")
}
