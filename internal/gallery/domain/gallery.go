package domain

import (
	"time"

	authdomain "diario-backend/internal/auth/domain"
)

// GalleryItem is one hosted photo in the shared memories gallery
type GalleryItem struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`

	// Author carries the display name embedded in list payloads. Optional:
	// callers fall back to the active identity when absent.
	Author *authdomain.User `json:"author,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
