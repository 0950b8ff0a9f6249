package api

import (
	"net/http"

	"diario-backend/internal/auth/delivery"
	contentDelivery "diario-backend/internal/content/delivery"
	galleryDelivery "diario-backend/internal/gallery/delivery"
	moodDelivery "diario-backend/internal/mood/delivery"
	profileDelivery "diario-backend/internal/profile/delivery"
	reminderDelivery "diario-backend/internal/reminder/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := delivery.NewAuthHandler(h.authUsecase)
	contentHandler := contentDelivery.NewContentHandler(h.contentUsecase)
	moodHandler := moodDelivery.NewMoodHandler(h.moodUsecase)
	reminderHandler := reminderDelivery.NewReminderHandler(h.reminderUsecase)
	galleryHandler := galleryDelivery.NewGalleryHandler(h.galleryUsecase)
	profileHandler := profileDelivery.NewProfileHandler(h.profileUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), authHandler.Me)
			auth.PUT("/photo", delivery.AuthMiddleware(h.authUsecase), authHandler.UpdateAvatar)
		}

		// Push notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			notifications.POST("/register", authHandler.RegisterDevice)
			notifications.DELETE("/:token", authHandler.UnregisterDevice)
		}

		// Hydration route (protected)
		api.GET("/content", delivery.AuthMiddleware(h.authUsecase), contentHandler.Hydrate)

		// Mood log routes (protected)
		moods := api.Group("/moods")
		moods.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			moods.GET("", moodHandler.ListEntries)
			moods.POST("", moodHandler.CreateEntry)
		}

		// Reminder routes (protected)
		reminders := api.Group("/reminders")
		reminders.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			reminders.GET("", reminderHandler.ListReminders)
			reminders.POST("", reminderHandler.CreateReminder)
			reminders.DELETE("/:id", reminderHandler.DeleteReminder)
		}

		// Gallery routes (protected)
		gallery := api.Group("/gallery")
		gallery.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			gallery.GET("", galleryHandler.ListItems)
			gallery.POST("/upload", galleryHandler.Upload)
			gallery.DELETE("/:id", galleryHandler.DeleteItem)
			gallery.GET("/:id/download", galleryHandler.Download)
		}

		// Profile routes (protected)
		profile := api.Group("/profile")
		profile.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			profile.GET("/start-date", profileHandler.GetStartDate)
			profile.PUT("/start-date", profileHandler.SetStartDate)
			profile.DELETE("/start-date", profileHandler.ClearStartDate)
			profile.GET("/days-together", profileHandler.DaysTogether)
		}
	}
}
