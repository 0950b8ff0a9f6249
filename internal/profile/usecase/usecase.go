package usecase

// ProfileUsecase defines the interface for start date and days-together logic
type ProfileUsecase interface {
	// GetStartDate returns the stored date value, empty when unset
	GetStartDate(userID string) (string, error)

	// SetStartDate stores the date; an empty value clears it
	SetStartDate(userID, value string) error

	// ClearStartDate removes the stored date
	ClearStartDate(userID string) error

	// DaysTogether returns the whole elapsed days since the stored start
	// date. ok is false when no date is set, the date does not parse, or
	// the date lies in the future.
	DaysTogether(userID string) (days int, ok bool, err error)
}
