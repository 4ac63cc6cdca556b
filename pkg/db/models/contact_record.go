package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactRecord is the best-effort audit record for a contact inquiry.
// Unlike OrderRecord it may not exist at all when the initial write
// failed; the send attempt proceeds regardless.
type ContactRecord struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string     `gorm:"type:text;not null;default:''"`
	Email         string     `gorm:"type:text;not null;default:''"`
	Message       string     `gorm:"type:text;not null;default:''"`
	Sent          bool       `gorm:"not null;default:false"`
	Provider      *string    `gorm:"type:text"`
	ProviderError *string    `gorm:"type:text"`
	SentAt        *time.Time `gorm:"type:timestamptz"`
	CreatedAt     time.Time  `gorm:"type:timestamptz;default:now()"`
}

// TableName keeps the historical collection name.
func (ContactRecord) TableName() string {
	return "contact_records"
}
