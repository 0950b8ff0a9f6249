package usecase

import (
	"context"

	galleryrepo "diario-backend/internal/gallery/repository"
	moodrepo "diario-backend/internal/mood/repository"
	reminderrepo "diario-backend/internal/reminder/repository"

	"golang.org/x/sync/errgroup"
)

// contentUsecase implements ContentUsecase interface
type contentUsecase struct {
	moodRepo     moodrepo.MoodRepository
	reminderRepo reminderrepo.ReminderRepository
	galleryRepo  galleryrepo.GalleryRepository
}

// NewContentUsecase creates a new instance of contentUsecase
func NewContentUsecase(
	moodRepo moodrepo.MoodRepository,
	reminderRepo reminderrepo.ReminderRepository,
	galleryRepo galleryrepo.GalleryRepository,
) ContentUsecase {
	return &contentUsecase{
		moodRepo:     moodRepo,
		reminderRepo: reminderRepo,
		galleryRepo:  galleryRepo,
	}
}

// Hydrate treats the three fetches as one transaction: either all commit or
// the caller gets a single error and nothing else.
func (u *contentUsecase) Hydrate(ctx context.Context, userID string) (*HydrationResult, error) {
	result := &HydrationResult{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		moods, err := u.moodRepo.ListDesc()
		if err != nil {
			return err
		}
		result.Moods = moods
		return nil
	})

	g.Go(func() error {
		reminders, err := u.reminderRepo.ListDesc()
		if err != nil {
			return err
		}
		result.Reminders = reminders
		return nil
	})

	g.Go(func() error {
		items, err := u.galleryRepo.ListDesc()
		if err != nil {
			return err
		}
		result.Gallery = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The lists are newest first, so the first own entry is the latest
	for _, entry := range result.Moods {
		if entry.UserID == userID {
			result.CurrentMood = CurrentMood{Mood: entry.Mood, Note: entry.Note}
			break
		}
	}

	return result, nil
}
