package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "diario-backend/internal/auth/domain"
	"diario-backend/internal/reminder/usecase"

	"github.com/gin-gonic/gin"
)

// ReminderHandler handles reminder HTTP requests
type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{reminderUsecase: reminderUsecase}
}

// CreateReminderRequest represents the request body for adding a reminder
type CreateReminderRequest struct {
	Text     string  `json:"text" binding:"required"`
	RemindAt *string `json:"remind_at"`
}

// ListReminders returns all reminders, newest first
// GET /api/reminders
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	reminders, err := h.reminderUsecase.ListReminders()
	if err != nil {
		log.Printf("[Reminder] List failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// CreateReminder adds a reminder authored by the active identity
// POST /api/reminders
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.reminderUsecase.CreateReminder(user, req.Text, req.RemindAt)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[Reminder] Create failed for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save the reminder"})
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// DeleteReminder removes a reminder authored by the active identity
// DELETE /api/reminders/:id
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	userID := c.GetString("userID")
	reminderID := c.Param("id")

	if err := h.reminderUsecase.DeleteReminder(userID, reminderID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrNotAuthor):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			log.Printf("[Reminder] Delete failed for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete the reminder"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reminder deleted"})
}
