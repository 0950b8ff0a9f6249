package delivery

import (
	"errors"
	"io"
	"log"
	"net/http"

	authdomain "diario-backend/internal/auth/domain"
	"diario-backend/internal/gallery/usecase"

	"github.com/gin-gonic/gin"
)

// GalleryHandler handles gallery HTTP requests
type GalleryHandler struct {
	galleryUsecase usecase.GalleryUsecase
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(galleryUsecase usecase.GalleryUsecase) *GalleryHandler {
	return &GalleryHandler{galleryUsecase: galleryUsecase}
}

// ListItems returns all gallery items, newest first
// GET /api/gallery
func (h *GalleryHandler) ListItems(c *gin.Context) {
	items, err := h.galleryUsecase.ListItems()
	if err != nil {
		log.Printf("[Gallery] List failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the gallery"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Upload runs the upload pipeline for a multipart image + caption
// POST /api/gallery/upload
func (h *GalleryHandler) Upload(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)

	caption := c.PostForm("caption")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrNoFile.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read the image file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read the image file"})
		return
	}

	item, err := h.galleryUsecase.Upload(c.Request.Context(), user, fileHeader.Filename, data, caption)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoFile), errors.Is(err, usecase.ErrEmptyCaption):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrHostNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrUploadInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			// Host or DB failure; the message already carries the most
			// specific cause available
			log.Printf("[Gallery] Upload failed for user %s: %v", user.ID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, item)
}

// DeleteItem removes a gallery item authored by the active identity
// DELETE /api/gallery/:id
func (h *GalleryHandler) DeleteItem(c *gin.Context) {
	userID := c.GetString("userID")
	itemID := c.Param("id")

	if err := h.galleryUsecase.DeleteItem(userID, itemID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrNotAuthor):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			log.Printf("[Gallery] Delete failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete the image"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
}

// Download streams the hosted image bytes as an attachment
// GET /api/gallery/:id/download
func (h *GalleryHandler) Download(c *gin.Context) {
	itemID := c.Param("id")

	data, filename, err := h.galleryUsecase.Download(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[Gallery] Download failed for item %s: %v", itemID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not download the image, try later"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "image/jpeg", data)
}
