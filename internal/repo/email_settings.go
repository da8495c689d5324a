package repo

import (
	"errors"
	"time"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmailSettingsRepo struct {
	db *gorm.DB
}

type EmailSettingsRepoInterface interface {
	GetByEventId(eventId uuid.UUID) (*models.EmailSettings, error)
	Upsert(settings *models.EmailSettings) error
	DeleteByEventId(eventId uuid.UUID) error
}

func NewEmailSettingsRepository(db *gorm.DB) EmailSettingsRepoInterface {
	return &EmailSettingsRepo{db: db}
}

func (r *EmailSettingsRepo) GetByEventId(eventId uuid.UUID) (*models.EmailSettings, error) {
	var settings models.EmailSettings
	if err := r.db.Where("event_id = ?", eventId).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert creates or replaces the one settings row per event. An empty
// incoming secret keeps the stored one, so the client never has to echo
// it back.
func (r *EmailSettingsRepo) Upsert(settings *models.EmailSettings) error {
	var existing models.EmailSettings
	result := r.db.Where("event_id = ?", settings.EventID).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		settings.UUID = uuid.New()
		settings.CreatedAt = time.Now()
		settings.UpdatedAt = time.Now()
		return r.db.Create(settings).Error
	} else if result.Error != nil {
		return result.Error
	}

	settings.UUID = existing.UUID
	settings.CreatedAt = existing.CreatedAt
	settings.UpdatedAt = time.Now()
	if settings.Secret == "" {
		settings.Secret = existing.Secret
	}
	return r.db.Model(&existing).Updates(settings).Error
}

func (r *EmailSettingsRepo) DeleteByEventId(eventId uuid.UUID) error {
	return r.db.Where("event_id = ?", eventId).Delete(&models.EmailSettings{}).Error
}
