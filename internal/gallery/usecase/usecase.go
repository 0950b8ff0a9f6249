package usecase

import (
	"context"

	authdomain "diario-backend/internal/auth/domain"
	"diario-backend/internal/gallery/domain"
)

// GalleryUsecase defines the interface for gallery business logic
type GalleryUsecase interface {
	// Upload runs the whole pipeline: encode the file, push it to the image
	// host, persist the hosted URL with the caption
	Upload(ctx context.Context, author *authdomain.User, filename string, data []byte, caption string) (*domain.GalleryItem, error)

	// ListItems returns all gallery items, newest first
	ListItems() ([]*domain.GalleryItem, error)

	// DeleteItem removes an item after checking the active identity is its
	// author
	DeleteItem(userID, itemID string) error

	// Download fetches the hosted image bytes and a filesystem-safe filename
	// derived from the caption
	Download(ctx context.Context, itemID string) ([]byte, string, error)
}

// ImageHost is the external hosting service the upload pipeline talks to
type ImageHost interface {
	Configured() bool
	Upload(ctx context.Context, imageBase64, name string) (string, error)
}
