package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BadgeTemplate persists one badge design for an event. Document holds the
// full designer state (canvas settings plus placed components) as the
// versioned JSON wire format; saves replace the whole document.
type BadgeTemplate struct {
	UUID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`

	Name     string         `gorm:"not null" json:"name"`
	Document datatypes.JSON `json:"document"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
