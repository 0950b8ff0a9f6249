package usecase

import (
	"strings"
	"time"

	"diario-backend/internal/profile/repository"
)

// moved to a variable so tests can pin the clock
var timeNow = time.Now

// profileUsecase implements ProfileUsecase interface
type profileUsecase struct {
	startDateRepo repository.StartDateRepository
}

// NewProfileUsecase creates a new instance of profileUsecase
func NewProfileUsecase(startDateRepo repository.StartDateRepository) ProfileUsecase {
	return &profileUsecase{startDateRepo: startDateRepo}
}

func (u *profileUsecase) GetStartDate(userID string) (string, error) {
	stored, err := u.startDateRepo.Get(userID)
	if err != nil {
		return "", err
	}
	if stored == nil {
		return "", nil
	}
	return stored.Value, nil
}

func (u *profileUsecase) SetStartDate(userID, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return u.startDateRepo.Clear(userID)
	}
	return u.startDateRepo.Set(userID, value)
}

func (u *profileUsecase) ClearStartDate(userID string) error {
	return u.startDateRepo.Clear(userID)
}

// DaysTogether is recomputed from the wall clock on every call, never cached.
func (u *profileUsecase) DaysTogether(userID string) (int, bool, error) {
	value, err := u.GetStartDate(userID)
	if err != nil {
		return 0, false, err
	}

	days, ok := ElapsedDays(value, timeNow())
	return days, ok, nil
}

// ElapsedDays computes whole days between a yyyy-mm-dd start date and now.
// Returns ok=false for an empty value, an unparseable date, or a start date
// in the future.
func ElapsedDays(value string, now time.Time) (int, bool) {
	if value == "" {
		return 0, false
	}

	start, err := time.Parse("2006-01-02", value)
	if err != nil {
		return 0, false
	}

	diff := now.Sub(start)
	if diff < 0 {
		return 0, false
	}

	return int(diff / (24 * time.Hour)), true
}
