package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lateladelgol/storefront-backend/pkg/enums"
)

// OrderItem is one purchased line inside an order record. The list is
// stored denormalized on the order row; the audit record never needs
// per-line queries.
type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderRecord is the durable audit record for a checkout submission.
// It is created before any delivery attempt and reconciled exactly once
// after the attempt resolves; this subsystem never deletes it.
type OrderRecord struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string            `gorm:"type:text;not null"`
	Email         string            `gorm:"type:text;not null"`
	Items         []OrderItem       `gorm:"type:jsonb;serializer:json;not null"`
	Total         float64           `gorm:"type:numeric(12,2);not null"`
	Status        enums.OrderStatus `gorm:"type:text;not null;default:'pending'"`
	Provider      *string           `gorm:"type:text"`
	ProviderError *string           `gorm:"type:text"`
	SentAt        *time.Time        `gorm:"type:timestamptz"`
	CreatedAt     time.Time         `gorm:"type:timestamptz;default:now()"`
}

// TableName keeps the historical collection name.
func (OrderRecord) TableName() string {
	return "order_records"
}
