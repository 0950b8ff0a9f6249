package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"

	authdomain "diario-backend/internal/auth/domain"
	"diario-backend/internal/gallery/domain"
	"diario-backend/internal/gallery/repository"
)

var (
	// ErrNoFile means no image bytes were submitted
	ErrNoFile = errors.New("an image file is required")

	// ErrEmptyCaption means the caption was blank after trimming
	ErrEmptyCaption = errors.New("a caption is required")

	// ErrHostNotConfigured means no upload credential is configured; this
	// is a hard failure, not something to retry
	ErrHostNotConfigured = errors.New("image host api key is not configured")

	// ErrUploadInFlight means the identity already has an upload running
	ErrUploadInFlight = errors.New("an upload is already in progress")

	// ErrNotFound means no gallery item exists with the given id
	ErrNotFound = errors.New("gallery item not found")

	// ErrNotAuthor means the active identity did not create the item
	ErrNotAuthor = errors.New("only the author can delete a gallery item")
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w-]`)
)

// galleryUsecase implements GalleryUsecase interface
type galleryUsecase struct {
	galleryRepo repository.GalleryRepository
	imageHost   ImageHost
	httpClient  *http.Client

	mu       sync.Mutex
	inFlight map[string]bool // per-user upload guard
}

// NewGalleryUsecase creates a new instance of galleryUsecase
func NewGalleryUsecase(galleryRepo repository.GalleryRepository, imageHost ImageHost) GalleryUsecase {
	return &galleryUsecase{
		galleryRepo: galleryRepo,
		imageHost:   imageHost,
		httpClient:  &http.Client{},
		inFlight:    make(map[string]bool),
	}
}

func (u *galleryUsecase) Upload(ctx context.Context, author *authdomain.User, filename string, data []byte, caption string) (*domain.GalleryItem, error) {
	caption = strings.TrimSpace(caption)
	if len(data) == 0 {
		return nil, ErrNoFile
	}
	if caption == "" {
		return nil, ErrEmptyCaption
	}
	if u.imageHost == nil || !u.imageHost.Configured() {
		return nil, ErrHostNotConfigured
	}

	if !u.acquire(author.ID) {
		return nil, ErrUploadInFlight
	}
	defer u.release(author.ID)

	encoded := base64.StdEncoding.EncodeToString(data)
	name := stripExtension(filename)

	imageURL, err := u.imageHost.Upload(ctx, encoded, name)
	if err != nil {
		// The host's own message is the most specific one available
		return nil, err
	}

	item := &domain.GalleryItem{
		UserID:   author.ID,
		ImageURL: imageURL,
		Caption:  caption,
	}

	if err := u.galleryRepo.Create(item); err != nil {
		return nil, err
	}

	if item.Author == nil {
		item.Author = author
	}

	return item, nil
}

func (u *galleryUsecase) ListItems() ([]*domain.GalleryItem, error) {
	return u.galleryRepo.ListDesc()
}

// DeleteItem checks authorship up front instead of relying on the filtered
// delete silently matching nothing.
func (u *galleryUsecase) DeleteItem(userID, itemID string) error {
	item, err := u.galleryRepo.FindByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	if item.UserID != userID {
		return ErrNotAuthor
	}

	return u.galleryRepo.DeleteByIDAndAuthor(itemID, userID)
}

func (u *galleryUsecase) Download(ctx context.Context, itemID string) ([]byte, string, error) {
	item, err := u.galleryRepo.FindByID(itemID)
	if err != nil {
		return nil, "", err
	}
	if item == nil {
		return nil, "", ErrNotFound
	}

	req, err := http.NewRequestWithContext(ctx, "GET", item.ImageURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image host answered status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return data, DownloadFilename(item), nil
}

// DownloadFilename derives a filesystem-safe base name from the caption,
// falling back to the item id.
func DownloadFilename(item *domain.GalleryItem) string {
	base := strings.TrimSpace(item.Caption)
	if base == "" {
		base = "recuerdo-" + item.ID
	}
	base = whitespaceRe.ReplaceAllString(base, "-")
	base = nonWordRe.ReplaceAllString(base, "")
	base = strings.ToLower(base)
	if base == "" {
		base = "recuerdo"
	}
	return base + ".jpg"
}

func stripExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		return filename[:idx]
	}
	return filename
}

func (u *galleryUsecase) acquire(userID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.inFlight[userID] {
		return false
	}
	u.inFlight[userID] = true
	return true
}

func (u *galleryUsecase) release(userID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inFlight, userID)
}
