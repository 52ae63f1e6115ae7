package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/internal/model"
)

// ImportBatchRepository import history data access
type ImportBatchRepository interface {
	Create(ctx context.Context, batch *model.ImportBatch) error
	ListRecent(ctx context.Context, limit int) ([]model.ImportBatch, error)
}

type importBatchRepo struct {
	db *gorm.DB
}

// NewImportBatchRepo creates an ImportBatchRepository
func NewImportBatchRepo(db *gorm.DB) ImportBatchRepository {
	return &importBatchRepo{db: db}
}

func (r *importBatchRepo) Create(ctx context.Context, batch *model.ImportBatch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

// ListRecent returns the newest batches first.
func (r *importBatchRepo) ListRecent(ctx context.Context, limit int) ([]model.ImportBatch, error) {
	batches := make([]model.ImportBatch, 0)
	err := r.db.WithContext(ctx).
		Order("batch_id DESC").
		Limit(limit).
		Find(&batches).Error
	return batches, err
}
