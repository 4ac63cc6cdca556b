package products

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lateladelgol/storefront-backend/pkg/db/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		price REAL NOT NULL,
		image_ref TEXT NOT NULL DEFAULT '',
		discount REAL,
		sale_end_date DATETIME,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`
	require.NoError(t, conn.Exec(ddl).Error)
	return conn
}

func seedProduct(t *testing.T, conn *gorm.DB, name string, createdAt time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	record := models.Product{
		ID:        id,
		Name:      name,
		Price:     39.90,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, conn.Create(&record).Error)
	return id
}

func TestListReturnsCatalogOldestFirst(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	second := seedProduct(t, conn, "Bufanda clasica", base.Add(time.Hour))
	first := seedProduct(t, conn, "Camiseta retro", base)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, first, records[0].ID)
	require.Equal(t, second, records[1].ID)
}

func TestListEmptyCatalog(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}
