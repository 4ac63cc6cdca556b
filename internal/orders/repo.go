package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lateladelgol/storefront-backend/pkg/db/models"
	"github.com/lateladelgol/storefront-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository encapsulates order-record persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an order repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the pending audit record before any delivery attempt.
func (r *Repository) Create(ctx context.Context, record *models.OrderRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// MarkSent reconciles a pending record to sent. The status guard keeps
// the pending→sent transition single-shot.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, provider string, sentAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.OrderRecord{}).
		Where("id = ? AND status = ?", id, enums.OrderStatusPending).
		Updates(map[string]any{
			"status":   enums.OrderStatusSent,
			"provider": provider,
			"sent_at":  sentAt,
		}).
		Error
}

// MarkFailed reconciles a pending record to failed and stores the
// provider error for the audit trail.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, provider, providerError string, sentAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.OrderRecord{}).
		Where("id = ? AND status = ?", id, enums.OrderStatusPending).
		Updates(map[string]any{
			"status":         enums.OrderStatusFailed,
			"provider":       provider,
			"provider_error": providerError,
			"sent_at":        sentAt,
		}).
		Error
}
