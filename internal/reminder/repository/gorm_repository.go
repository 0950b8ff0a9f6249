package repository

import (
	"errors"
	"time"

	"diario-backend/internal/reminder/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormReminderRepository implements ReminderRepository using GORM
type gormReminderRepository struct {
	db *gorm.DB
}

// NewGormReminderRepository creates a new GORM-based ReminderRepository
func NewGormReminderRepository(db *gorm.DB) ReminderRepository {
	return &gormReminderRepository{db: db}
}

func (r *gormReminderRepository) Create(reminder *domain.Reminder) error {
	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}
	reminder.CreatedAt = time.Now()
	return r.db.Create(reminder).Error
}

func (r *gormReminderRepository) FindByID(id string) (*domain.Reminder, error) {
	var reminder domain.Reminder
	err := r.db.Where("id = ?", id).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *gormReminderRepository) ListDesc() ([]*domain.Reminder, error) {
	var reminders []*domain.Reminder
	err := r.db.Preload("Author").Order("created_at DESC").Find(&reminders).Error
	return reminders, err
}

func (r *gormReminderRepository) DeleteByIDAndAuthor(id, userID string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Reminder{}).Error
}

func (r *gormReminderRepository) FindPendingReminders(now time.Time) ([]*domain.Reminder, error) {
	var reminders []*domain.Reminder
	err := r.db.Where("remind_at <= ? AND reminder_sent = ?", now, false).Find(&reminders).Error
	return reminders, err
}

func (r *gormReminderRepository) MarkReminderSent(id string) error {
	return r.db.Model(&domain.Reminder{}).Where("id = ?", id).
		Update("reminder_sent", true).Error
}
