package models

import (
	"time"

	"github.com/google/uuid"
)

// Participant is one roster entry, scoped to an event. CheckinCode is the
// payload encoded into the check-in QR code.
type Participant struct {
	UUID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`

	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"not null" json:"email"`
	Company  string `json:"company"`
	Title    string `json:"title"`

	CheckinCode string     `gorm:"uniqueIndex;not null" json:"checkin_code"`
	CheckedIn   bool       `gorm:"default:false" json:"checked_in"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
