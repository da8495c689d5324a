package repo

import (
	"time"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepo represents the repository for the event model
type EventRepo struct {
	db *gorm.DB
}

type EventRepoInterface interface {
	CreateEvent(event *models.Event) (uuid.UUID, error)
	GetAllEvents() ([]models.Event, error)
	GetEventByID(id uuid.UUID) (*models.Event, error)
	UpdateEvent(event *models.Event) error
	DeleteEvent(id uuid.UUID) error
}

func NewEventRepository(db *gorm.DB) EventRepoInterface {
	return &EventRepo{db: db}
}

// CreateEvent creates a new event in the database
func (r *EventRepo) CreateEvent(event *models.Event) (uuid.UUID, error) {
	id := uuid.New()
	event.UUID = id
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	err := r.db.Create(event).Error
	return id, err
}

// GetAllEvents returns all events, newest first
func (r *EventRepo) GetAllEvents() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("starts_at desc").Find(&events).Error
	return events, err
}

func (r *EventRepo) GetEventByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := r.db.Where("uuid = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepo) UpdateEvent(event *models.Event) error {
	event.UpdatedAt = time.Now()
	return r.db.Model(&models.Event{}).Where("uuid = ?", event.UUID).Updates(event).Error
}

// DeleteEvent removes the event and everything scoped to it
func (r *EventRepo) DeleteEvent(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.AgendaItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.EmailSettings{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.BadgeTemplate{}).Error; err != nil {
			return err
		}
		return tx.Where("uuid = ?", id).Delete(&models.Event{}).Error
	})
}
