package delivery

import (
	"log"
	"net/http"

	"diario-backend/internal/content/usecase"

	"github.com/gin-gonic/gin"
)

// ContentHandler handles the hydration HTTP request
type ContentHandler struct {
	contentUsecase usecase.ContentUsecase
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentUsecase usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{contentUsecase: contentUsecase}
}

// Hydrate returns the full content payload for a freshly established or
// restored session
// GET /api/content
func (h *ContentHandler) Hydrate(c *gin.Context) {
	userID := c.GetString("userID")

	result, err := h.contentUsecase.Hydrate(c.Request.Context(), userID)
	if err != nil {
		// One banner for the whole hydration, no partial payload
		log.Printf("[Content] Hydration failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load all the content, refresh the session"})
		return
	}

	c.JSON(http.StatusOK, result)
}
