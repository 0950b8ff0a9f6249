package domain

import "time"

// StartDate is the per-identity relationship start date. It is a local
// setting of the session, one row per identity, independent of the shared
// collections.
type StartDate struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	Value     string    `json:"value" gorm:"not null"` // yyyy-mm-dd
	UpdatedAt time.Time `json:"updated_at"`
}
