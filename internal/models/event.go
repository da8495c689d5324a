package models

import (
	"time"

	"github.com/google/uuid"
)

// Event represents the database model for one organized event.
type Event struct {
	UUID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`

	// Public self-registration form
	RegistrationOpen bool   `gorm:"default:false" json:"registration_open"`
	AccentColor      string `json:"accent_color"`
	LogoURL          string `json:"logo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
