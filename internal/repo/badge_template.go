package repo

import (
	"time"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BadgeTemplateRepo struct {
	db *gorm.DB
}

type BadgeTemplateRepoInterface interface {
	CreateTemplate(t *models.BadgeTemplate) (uuid.UUID, error)
	GetTemplatesByEventId(eventId uuid.UUID) ([]models.BadgeTemplate, error)
	GetTemplateByID(id uuid.UUID) (*models.BadgeTemplate, error)
	SaveDocument(id uuid.UUID, document []byte) error
	DeleteTemplate(id uuid.UUID) error
}

func NewBadgeTemplateRepository(db *gorm.DB) BadgeTemplateRepoInterface {
	return &BadgeTemplateRepo{db: db}
}

func (r *BadgeTemplateRepo) CreateTemplate(t *models.BadgeTemplate) (uuid.UUID, error) {
	id := uuid.New()
	t.UUID = id
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	err := r.db.Create(t).Error
	return id, err
}

func (r *BadgeTemplateRepo) GetTemplatesByEventId(eventId uuid.UUID) ([]models.BadgeTemplate, error) {
	var templates []models.BadgeTemplate
	err := r.db.Where("event_id = ?", eventId).Order("created_at asc").Find(&templates).Error
	return templates, err
}

func (r *BadgeTemplateRepo) GetTemplateByID(id uuid.UUID) (*models.BadgeTemplate, error) {
	var t models.BadgeTemplate
	if err := r.db.Where("uuid = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveDocument replaces the stored designer document wholesale. There is
// no diff format; the designer always saves the full registry.
func (r *BadgeTemplateRepo) SaveDocument(id uuid.UUID, document []byte) error {
	return r.db.Model(&models.BadgeTemplate{}).Where("uuid = ?", id).
		Updates(map[string]interface{}{
			"document":   datatypes.JSON(document),
			"updated_at": time.Now(),
		}).Error
}

func (r *BadgeTemplateRepo) DeleteTemplate(id uuid.UUID) error {
	return r.db.Where("uuid = ?", id).Delete(&models.BadgeTemplate{}).Error
}
