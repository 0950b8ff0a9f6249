package usecase

import (
	"errors"
	"strings"

	authdomain "diario-backend/internal/auth/domain"
	"diario-backend/internal/mood/domain"
	"diario-backend/internal/mood/repository"
)

// ErrEmptyEntry means both the mood label and the note were blank
var ErrEmptyEntry = errors.New("mood or note is required")

// moodUsecase implements MoodUsecase interface
type moodUsecase struct {
	moodRepo repository.MoodRepository
}

// NewMoodUsecase creates a new instance of moodUsecase
func NewMoodUsecase(moodRepo repository.MoodRepository) MoodUsecase {
	return &moodUsecase{moodRepo: moodRepo}
}

func (u *moodUsecase) CreateEntry(author *authdomain.User, mood, note string) (*domain.MoodEntry, error) {
	mood = strings.TrimSpace(mood)
	note = strings.TrimSpace(note)
	if mood == "" && note == "" {
		return nil, ErrEmptyEntry
	}

	entry := &domain.MoodEntry{
		UserID: author.ID,
		Mood:   mood,
		Note:   note,
	}

	if err := u.moodRepo.Create(entry); err != nil {
		return nil, err
	}

	// The insert does not load the association, so attach the active
	// identity as author before handing the record back for prepending.
	if entry.Author == nil {
		entry.Author = author
	}

	return entry, nil
}

func (u *moodUsecase) ListEntries() ([]*domain.MoodEntry, error) {
	return u.moodRepo.ListDesc()
}
