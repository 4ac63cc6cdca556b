package products

import (
	"context"

	"github.com/lateladelgol/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates catalog persistence. The storefront only
// reads; catalog writes belong to the admin tooling.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a product repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns the full catalog ordered oldest first, matching the
// shop page layout.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var records []models.Product
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&records).
		Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
