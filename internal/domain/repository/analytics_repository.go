package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AnalyticsRepository defines aggregate queries pushed down to the
// database. Row-level aggregations the dashboard does in Go stay on
// ReceiptRepository; these are plain SUM/COUNT range scans.
type AnalyticsRepository interface {
	// SumReceiptTotals returns the sum of receipt totals for the owner in
	// [from, to], bounds inclusive. Missing rows sum to 0, never an error.
	SumReceiptTotals(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (float64, error)

	// CountLowStock returns the number of products of the store whose stock
	// is at or below the given threshold.
	CountLowStock(ctx context.Context, storeID uuid.UUID, threshold int) (int64, error)
}
