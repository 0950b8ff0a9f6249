package usecase

import (
	"context"

	gallerydomain "diario-backend/internal/gallery/domain"
	mooddomain "diario-backend/internal/mood/domain"
	reminderdomain "diario-backend/internal/reminder/domain"
)

// ContentUsecase hydrates the whole view state after a session is
// established or restored
type ContentUsecase interface {
	// Hydrate fetches the three collections in parallel and derives the
	// current mood of the active identity. Any fetch failure aborts the
	// whole hydration.
	Hydrate(ctx context.Context, userID string) (*HydrationResult, error)
}

// CurrentMood is the most recent mood entry authored by the active
// identity, empty when it never logged one
type CurrentMood struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

// HydrationResult is the full content payload, each list newest first
type HydrationResult struct {
	Moods       []*mooddomain.MoodEntry      `json:"moods"`
	Reminders   []*reminderdomain.Reminder   `json:"reminders"`
	Gallery     []*gallerydomain.GalleryItem `json:"gallery"`
	CurrentMood CurrentMood                  `json:"current_mood"`
}
