package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	domainRepo "github.com/kasirku/kasir-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) SumReceiptTotals(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM receipts
		WHERE owner_id = ?
		  AND created_at >= ?
		  AND created_at <= ?
	`, ownerID, from, to).Scan(&sum).Error
	return sum, err
}

func (r *analyticsRepository) CountLowStock(ctx context.Context, storeID uuid.UUID, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM products
		WHERE store_id = ?
		  AND stock <= ?
		  AND deleted_at IS NULL
	`, storeID, threshold).Scan(&count).Error
	return count, err
}
