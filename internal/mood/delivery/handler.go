package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "diario-backend/internal/auth/domain"
	"diario-backend/internal/mood/usecase"

	"github.com/gin-gonic/gin"
)

// MoodHandler handles mood log HTTP requests
type MoodHandler struct {
	moodUsecase usecase.MoodUsecase
}

// NewMoodHandler creates a new MoodHandler
func NewMoodHandler(moodUsecase usecase.MoodUsecase) *MoodHandler {
	return &MoodHandler{moodUsecase: moodUsecase}
}

// CreateEntryRequest represents the request body for logging a mood
type CreateEntryRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

// ListEntries returns the mood log, newest first
// GET /api/moods
func (h *MoodHandler) ListEntries(c *gin.Context) {
	entries, err := h.moodUsecase.ListEntries()
	if err != nil {
		log.Printf("[Mood] List failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load mood entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// CreateEntry records a new mood entry for the active identity
// POST /api/moods
func (h *MoodHandler) CreateEntry(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.moodUsecase.CreateEntry(user, req.Mood, req.Note)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[Mood] Create failed for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save the mood entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}
