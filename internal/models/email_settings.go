package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailProvider tags the configured outbound mail provider.
type EmailProvider string

const (
	ProviderSMTP     EmailProvider = "smtp"
	ProviderResend   EmailProvider = "resend"
	ProviderSendGrid EmailProvider = "sendgrid"
)

// EmailSettings is the per-event outbound mail configuration. The secret
// is write-only: it is accepted on save and never serialized back out.
type EmailSettings struct {
	UUID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	EventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"event_id"`

	Provider    EmailProvider `gorm:"default:'smtp'" json:"provider"`
	Host        string        `json:"host"`
	Port        int           `json:"port"`
	Username    string        `json:"username"`
	Secret      string        `json:"-"`
	FromAddress string        `json:"from_address"`
	FromName    string        `json:"from_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
