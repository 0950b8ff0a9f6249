package delivery

import (
	"log"
	"net/http"

	"diario-backend/internal/profile/usecase"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles start date and days-together HTTP requests
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileUsecase usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// SetStartDateRequest represents the request body for storing a start date
type SetStartDateRequest struct {
	Value string `json:"value"`
}

// GetStartDate returns the stored start date, empty when unset
// GET /api/profile/start-date
func (h *ProfileHandler) GetStartDate(c *gin.Context) {
	userID := c.GetString("userID")

	value, err := h.profileUsecase.GetStartDate(userID)
	if err != nil {
		log.Printf("[Profile] Start date lookup failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the start date"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": value})
}

// SetStartDate stores the start date; an empty value clears it
// PUT /api/profile/start-date
func (h *ProfileHandler) SetStartDate(c *gin.Context) {
	userID := c.GetString("userID")

	var req SetStartDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.profileUsecase.SetStartDate(userID, req.Value); err != nil {
		log.Printf("[Profile] Start date update failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save the start date"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": req.Value})
}

// ClearStartDate removes the stored start date
// DELETE /api/profile/start-date
func (h *ProfileHandler) ClearStartDate(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.profileUsecase.ClearStartDate(userID); err != nil {
		log.Printf("[Profile] Start date clear failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear the start date"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "start date cleared"})
}

// DaysTogether returns the derived day count, null when there is no value
// GET /api/profile/days-together
func (h *ProfileHandler) DaysTogether(c *gin.Context) {
	userID := c.GetString("userID")

	days, ok, err := h.profileUsecase.DaysTogether(userID)
	if err != nil {
		log.Printf("[Profile] Days computation failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute the day count"})
		return
	}

	if !ok {
		c.JSON(http.StatusOK, gin.H{"days": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}
