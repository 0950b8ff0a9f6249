package main

import (
	"log"

	api "diario-backend/cmd/api"
	authdomain "diario-backend/internal/auth/domain"
	authRepo "diario-backend/internal/auth/repository"
	authUsecase "diario-backend/internal/auth/usecase"
	contentUsecase "diario-backend/internal/content/usecase"
	gallerydomain "diario-backend/internal/gallery/domain"
	galleryRepo "diario-backend/internal/gallery/repository"
	galleryUsecase "diario-backend/internal/gallery/usecase"
	mooddomain "diario-backend/internal/mood/domain"
	moodRepo "diario-backend/internal/mood/repository"
	moodUsecase "diario-backend/internal/mood/usecase"
	profiledomain "diario-backend/internal/profile/domain"
	profileRepo "diario-backend/internal/profile/repository"
	profileUsecase "diario-backend/internal/profile/usecase"
	reminderdomain "diario-backend/internal/reminder/domain"
	reminderRepo "diario-backend/internal/reminder/repository"
	"diario-backend/internal/reminder/scheduler"
	reminderUsecase "diario-backend/internal/reminder/usecase"
	"diario-backend/pkg/config"
	"diario-backend/pkg/database"
	"diario-backend/pkg/fcm"
	"diario-backend/pkg/imgbb"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&authdomain.DeviceToken{},
		&mooddomain.MoodEntry{},
		&reminderdomain.Reminder{},
		&gallerydomain.GalleryItem{},
		&profiledomain.StartDate{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	deviceTokenRepository := authRepo.NewDeviceTokenRepository(db)
	moodRepository := moodRepo.NewGormMoodRepository(db)
	reminderRepository := reminderRepo.NewGormReminderRepository(db)
	galleryRepository := galleryRepo.NewGormGalleryRepository(db)
	startDateRepository := profileRepo.NewGormStartDateRepository(db)

	// Initialize the image host client; uploads fail with an explicit
	// message when no key is configured
	imageHost := imgbb.NewClient(cfg.ImgBBAPIKey, cfg.ImgBBUploadURL)
	if !imageHost.Configured() {
		log.Printf("[WARN] IMGBB_API_KEY not set, gallery uploads disabled")
	}

	// Initialize FCM client (optional, reminder pushes work without it)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (reminder pushes disabled): %v", err)
		}
	} else {
		log.Printf("[WARN] No Firebase credentials configured, reminder pushes disabled")
	}

	// Start the reminder push scheduler
	pushScheduler := scheduler.NewPushScheduler(reminderRepository, deviceTokenRepository, fcmClient)
	pushScheduler.Start()

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, deviceTokenRepository, cfg)
	moodUc := moodUsecase.NewMoodUsecase(moodRepository)
	reminderUc := reminderUsecase.NewReminderUsecase(reminderRepository)
	galleryUc := galleryUsecase.NewGalleryUsecase(galleryRepository, imageHost)
	profileUc := profileUsecase.NewProfileUsecase(startDateRepository)
	contentUc := contentUsecase.NewContentUsecase(moodRepository, reminderRepository, galleryRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, contentUc, moodUc, reminderUc, galleryUc, profileUc, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
