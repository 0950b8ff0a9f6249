package scheduler

import (
	"context"
	"log"
	"time"

	authrepo "diario-backend/internal/auth/repository"
	"diario-backend/internal/reminder/repository"
	"diario-backend/pkg/fcm"
)

// PushScheduler sends FCM notifications for reminders whose remind-at time
// has passed
type PushScheduler struct {
	reminderRepo repository.ReminderRepository
	deviceRepo   authrepo.DeviceTokenRepository
	fcmClient    *fcm.Client
	interval     time.Duration
	stopChan     chan struct{}
}

// NewPushScheduler creates a new scheduler
func NewPushScheduler(
	reminderRepo repository.ReminderRepository,
	deviceRepo authrepo.DeviceTokenRepository,
	fcmClient *fcm.Client,
) *PushScheduler {
	return &PushScheduler{
		reminderRepo: reminderRepo,
		deviceRepo:   deviceRepo,
		fcmClient:    fcmClient,
		interval:     1 * time.Minute,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *PushScheduler) Start() {
	if s.fcmClient == nil {
		log.Println("[ReminderScheduler] FCM client not available, scheduler disabled")
		return
	}

	log.Println("[ReminderScheduler] Starting reminder push scheduler (interval: 1 minute)")

	go func() {
		// Run immediately on start
		s.checkAndSendPushes()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.checkAndSendPushes()
			case <-s.stopChan:
				log.Println("[ReminderScheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *PushScheduler) Stop() {
	close(s.stopChan)
}

func (s *PushScheduler) checkAndSendPushes() {
	now := time.Now()

	reminders, err := s.reminderRepo.FindPendingReminders(now)
	if err != nil {
		log.Printf("[ReminderScheduler] Error finding pending reminders: %v", err)
		return
	}

	if len(reminders) == 0 {
		return
	}

	log.Printf("[ReminderScheduler] Found %d reminders due for a push", len(reminders))

	for _, reminder := range reminders {
		tokens, err := s.deviceRepo.GetTokensByUserID(reminder.UserID)
		if err != nil {
			log.Printf("[ReminderScheduler] Error getting device tokens for user %s: %v", reminder.UserID, err)
			continue
		}

		if len(tokens) == 0 {
			log.Printf("[ReminderScheduler] No device tokens for user %s, marking push as sent", reminder.UserID)
			s.reminderRepo.MarkReminderSent(reminder.ID)
			continue
		}

		var tokenStrings []string
		for _, t := range tokens {
			tokenStrings = append(tokenStrings, t.Token)
		}

		notification := fcm.NotificationData{
			Title: "Recordatorio de pareja",
			Body:  reminder.Text,
			Data: map[string]string{
				"type":        "reminder",
				"reminder_id": reminder.ID,
			},
		}

		failedTokens, err := s.fcmClient.SendToDevices(context.Background(), tokenStrings, notification)
		if err != nil {
			log.Printf("[ReminderScheduler] Error pushing reminder %s: %v", reminder.ID, err)
		} else {
			log.Printf("[ReminderScheduler] Pushed reminder %s to %d devices", reminder.ID, len(tokenStrings)-len(failedTokens))
		}

		// Cleanup tokens the host rejected
		for _, token := range failedTokens {
			s.deviceRepo.DeleteToken(token)
		}

		// Mark as sent regardless of delivery outcome to avoid spamming
		if err := s.reminderRepo.MarkReminderSent(reminder.ID); err != nil {
			log.Printf("[ReminderScheduler] Error marking reminder %s as sent: %v", reminder.ID, err)
		}
	}
}
