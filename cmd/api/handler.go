package api

import (
	authUsecase "diario-backend/internal/auth/usecase"
	contentUsecase "diario-backend/internal/content/usecase"
	galleryUsecase "diario-backend/internal/gallery/usecase"
	moodUsecase "diario-backend/internal/mood/usecase"
	profileUsecase "diario-backend/internal/profile/usecase"
	reminderUsecase "diario-backend/internal/reminder/usecase"
	"diario-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	contentUsecase  contentUsecase.ContentUsecase
	moodUsecase     moodUsecase.MoodUsecase
	reminderUsecase reminderUsecase.ReminderUsecase
	galleryUsecase  galleryUsecase.GalleryUsecase
	profileUsecase  profileUsecase.ProfileUsecase
	config          *config.Config
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	contentUc contentUsecase.ContentUsecase,
	moodUc moodUsecase.MoodUsecase,
	reminderUc reminderUsecase.ReminderUsecase,
	galleryUc galleryUsecase.GalleryUsecase,
	profileUc profileUsecase.ProfileUsecase,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:     authUc,
		contentUsecase:  contentUc,
		moodUsecase:     moodUc,
		reminderUsecase: reminderUc,
		galleryUsecase:  galleryUc,
		profileUsecase:  profileUc,
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
