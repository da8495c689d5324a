package repo

import (
	"time"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgendaRepo struct {
	db *gorm.DB
}

type AgendaRepoInterface interface {
	CreateAgendaItem(item *models.AgendaItem) (uuid.UUID, error)
	GetAgendaByEventId(eventId uuid.UUID) ([]models.AgendaItem, error)
	UpdateAgendaItem(item *models.AgendaItem) error
	DeleteAgendaItem(id uuid.UUID) error
}

func NewAgendaRepository(db *gorm.DB) AgendaRepoInterface {
	return &AgendaRepo{db: db}
}

func (r *AgendaRepo) CreateAgendaItem(item *models.AgendaItem) (uuid.UUID, error) {
	id := uuid.New()
	item.UUID = id
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	err := r.db.Create(item).Error
	return id, err
}

// GetAgendaByEventId returns the agenda ordered by sort order, then time
func (r *AgendaRepo) GetAgendaByEventId(eventId uuid.UUID) ([]models.AgendaItem, error) {
	var items []models.AgendaItem
	err := r.db.Where("event_id = ?", eventId).
		Order("sort_order asc, starts_at asc").
		Find(&items).Error
	return items, err
}

func (r *AgendaRepo) UpdateAgendaItem(item *models.AgendaItem) error {
	item.UpdatedAt = time.Now()
	return r.db.Model(&models.AgendaItem{}).Where("uuid = ?", item.UUID).Updates(item).Error
}

func (r *AgendaRepo) DeleteAgendaItem(id uuid.UUID) error {
	return r.db.Where("uuid = ?", id).Delete(&models.AgendaItem{}).Error
}
