package repository

import "diario-backend/internal/gallery/domain"

// GalleryRepository defines the interface for gallery data access
type GalleryRepository interface {
	// Create inserts a new item scoped to its author
	Create(item *domain.GalleryItem) error

	// FindByID finds an item by its ID. Returns (nil, nil) when not found.
	FindByID(id string) (*domain.GalleryItem, error)

	// ListDesc returns every item in descending created-at order with the
	// author association loaded
	ListDesc() ([]*domain.GalleryItem, error)

	// DeleteByIDAndAuthor deletes only when both the id and the author
	// match, mirroring the remote delete filter
	DeleteByIDAndAuthor(id, userID string) error
}
