package repositories

import (
	"context"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregate queries behind reports.
// Nothing here mutates state; results are computed per call, not cached.
type ReportingRepository interface {
	// GetExpenseSummaryByCategory totals expenses per category over a date range.
	GetExpenseSummaryByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryExpenseRow, error)

	// GetSalesTrend buckets sales totals by day/week/month over a date range.
	GetSalesTrend(ctx context.Context, from, to time.Time, grouping domain.SalesGrouping) ([]domain.SalesTrendRow, error)

	// GetTopSellingItems ranks items by revenue over a date range.
	GetTopSellingItems(ctx context.Context, from, to time.Time, limit int) ([]domain.TopItemRow, error)

	// GetDailySalesSummary aggregates one day's sales with payment-method breakdown.
	GetDailySalesSummary(ctx context.Context, day time.Time) (*domain.DailySalesSummary, error)

	// GetInventoryValuation returns quantity*unit_cost per item.
	GetInventoryValuation(ctx context.Context) ([]domain.InventoryValuationRow, error)
}
