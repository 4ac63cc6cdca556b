package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lateladelgol/storefront-backend/pkg/db/models"
)

// ContactRepository defines the persistence surface required by the
// contact pipeline.
type ContactRepository interface {
	Create(ctx context.Context, record *models.ContactRecord) error
	MarkSent(ctx context.Context, id uuid.UUID, provider string, sentAt time.Time) error
	MarkError(ctx context.Context, id uuid.UUID, providerError string) error
}
