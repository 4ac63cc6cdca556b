package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lateladelgol/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates contact-record persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a contact repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the unsent inquiry record.
func (r *Repository) Create(ctx context.Context, record *models.ContactRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// MarkSent flips the record to sent with the delivering provider.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, provider string, sentAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.ContactRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sent":     true,
			"provider": provider,
			"sent_at":  sentAt,
		}).
		Error
}

// MarkError stores the final provider error on an unsent record.
func (r *Repository) MarkError(ctx context.Context, id uuid.UUID, providerError string) error {
	return r.db.WithContext(ctx).
		Model(&models.ContactRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sent":           false,
			"provider_error": providerError,
		}).
		Error
}
