package repository

import (
	"errors"
	"time"

	"diario-backend/internal/gallery/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormGalleryRepository implements GalleryRepository using GORM
type gormGalleryRepository struct {
	db *gorm.DB
}

// NewGormGalleryRepository creates a new GORM-based GalleryRepository
func NewGormGalleryRepository(db *gorm.DB) GalleryRepository {
	return &gormGalleryRepository{db: db}
}

func (r *gormGalleryRepository) Create(item *domain.GalleryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	return r.db.Create(item).Error
}

func (r *gormGalleryRepository) FindByID(id string) (*domain.GalleryItem, error) {
	var item domain.GalleryItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *gormGalleryRepository) ListDesc() ([]*domain.GalleryItem, error) {
	var items []*domain.GalleryItem
	err := r.db.Preload("Author").Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *gormGalleryRepository) DeleteByIDAndAuthor(id, userID string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.GalleryItem{}).Error
}
