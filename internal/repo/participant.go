package repo

import (
	"time"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipantRepo struct {
	db *gorm.DB
}

type ParticipantRepoInterface interface {
	CreateParticipant(p *models.Participant) (uuid.UUID, error)
	GetParticipantsByEventId(eventId uuid.UUID, page int, pageSize int) ([]models.Participant, int64, error)
	GetAllParticipantsByEventId(eventId uuid.UUID) ([]models.Participant, error)
	GetParticipantByID(id uuid.UUID) (*models.Participant, error)
	GetParticipantByCheckinCode(code string) (*models.Participant, error)
	UpdateParticipant(p *models.Participant) error
	DeleteParticipant(id uuid.UUID) error
	CheckIn(code string) (*models.Participant, error)
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepoInterface {
	return &ParticipantRepo{db: db}
}

func (r *ParticipantRepo) CreateParticipant(p *models.Participant) (uuid.UUID, error) {
	id := uuid.New()
	p.UUID = id
	if p.CheckinCode == "" {
		p.CheckinCode = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	err := r.db.Create(p).Error
	return id, err
}

// signature returns participants, totalCount, error
func (r *ParticipantRepo) GetParticipantsByEventId(eventId uuid.UUID, page int, pageSize int) ([]models.Participant, int64, error) {
	var participants []models.Participant
	var total int64

	// sane defaults + cap
	if page < 1 {
		page = 1
	}
	const DefaultPageSize = 50
	const MaxPageSize = 200
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	offset := (page - 1) * pageSize

	base := r.db.Model(&models.Participant{}).Where("event_id = ?", eventId)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := base.Order("full_name asc").
		Limit(pageSize).
		Offset(offset).
		Find(&participants).Error; err != nil {
		return nil, 0, err
	}

	return participants, total, nil
}

// GetAllParticipantsByEventId returns the full roster, for CSV export
func (r *ParticipantRepo) GetAllParticipantsByEventId(eventId uuid.UUID) ([]models.Participant, error) {
	var participants []models.Participant
	err := r.db.Where("event_id = ?", eventId).Order("full_name asc").Find(&participants).Error
	return participants, err
}

func (r *ParticipantRepo) GetParticipantByID(id uuid.UUID) (*models.Participant, error) {
	var p models.Participant
	if err := r.db.Where("uuid = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParticipantRepo) GetParticipantByCheckinCode(code string) (*models.Participant, error) {
	var p models.Participant
	if err := r.db.Where("checkin_code = ?", code).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParticipantRepo) UpdateParticipant(p *models.Participant) error {
	p.UpdatedAt = time.Now()
	return r.db.Model(&models.Participant{}).Where("uuid = ?", p.UUID).Updates(p).Error
}

func (r *ParticipantRepo) DeleteParticipant(id uuid.UUID) error {
	return r.db.Where("uuid = ?", id).Delete(&models.Participant{}).Error
}

// CheckIn marks the participant with the given code as arrived. Checking
// in twice is not an error; the original timestamp is kept.
func (r *ParticipantRepo) CheckIn(code string) (*models.Participant, error) {
	var p models.Participant
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("checkin_code = ?", code).First(&p).Error; err != nil {
			return err
		}
		if p.CheckedIn {
			return nil
		}
		now := time.Now()
		p.CheckedIn = true
		p.CheckedInAt = &now
		p.UpdatedAt = now
		return tx.Model(&models.Participant{}).Where("uuid = ?", p.UUID).
			Updates(map[string]interface{}{
				"checked_in":    true,
				"checked_in_at": now,
				"updated_at":    now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
