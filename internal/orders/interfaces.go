package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lateladelgol/storefront-backend/pkg/db/models"
)

// OrderRepository defines the persistence surface required by the
// order pipeline.
type OrderRepository interface {
	Create(ctx context.Context, record *models.OrderRecord) error
	MarkSent(ctx context.Context, id uuid.UUID, provider string, sentAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, provider, providerError string, sentAt time.Time) error
}
