package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "diario-backend/internal/auth/domain"
	authdto "diario-backend/internal/auth/dto"
	"diario-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles session-related HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login validates credentials and establishes a session
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			log.Printf("[Auth] Login lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify credentials, try again"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RefreshToken re-establishes a session from a refresh token
// POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.RefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout destroys the stored refresh token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.Logout(req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the identity behind the current session
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)
	c.JSON(http.StatusOK, user)
}

// UpdateAvatar changes the profile photo URL
// PUT /api/auth/photo
func (h *AuthHandler) UpdateAvatar(c *gin.Context) {
	userID := c.GetString("userID")

	var req authdto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.UpdateAvatar(userID, req.AvatarURL)
	if err != nil {
		log.Printf("[Auth] Avatar update failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update the photo, try later"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// RegisterDevice stores an FCM device token for the current user
// POST /api/notifications/register
func (h *AuthHandler) RegisterDevice(c *gin.Context) {
	userID := c.GetString("userID")

	var req authdto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.RegisterDevice(userID, req.Token, req.DeviceInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "device registered"})
}

// UnregisterDevice removes a stored device token
// DELETE /api/notifications/:token
func (h *AuthHandler) UnregisterDevice(c *gin.Context) {
	token := c.Param("token")

	if err := h.authUsecase.UnregisterDevice(token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "device unregistered"})
}
