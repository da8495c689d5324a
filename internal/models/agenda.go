package models

import (
	"time"

	"github.com/google/uuid"
)

// AgendaItem is one session on an event's agenda.
type AgendaItem struct {
	UUID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`

	Title     string    `gorm:"not null" json:"title"`
	Speaker   string    `json:"speaker"`
	Room      string    `json:"room"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
