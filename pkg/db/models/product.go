package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is the catalog entry as the storefront reads it. The admin
// subsystem owns writes; this service only lists.
type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Description string     `gorm:"type:text;not null;default:''" json:"description"`
	Category    string     `gorm:"type:text;not null;default:''" json:"category"`
	Price       float64    `gorm:"type:numeric(12,2);not null" json:"price"`
	ImageRef    string     `gorm:"type:text;not null;default:''" json:"image_ref"`
	Discount    *float64   `gorm:"type:numeric(5,2)" json:"discount,omitempty"`
	SaleEndDate *time.Time `gorm:"type:timestamptz" json:"sale_end_date,omitempty"`
	CreatedAt   time.Time  `gorm:"type:timestamptz;default:now()" json:"-"`
	UpdatedAt   time.Time  `gorm:"type:timestamptz;default:now()" json:"-"`
}
