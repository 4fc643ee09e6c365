package services

import (
	"context"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
)

// ReportingSvcFacade defines read-only report generation. No mutation;
// results are computed per request, not cached.
type ReportingSvcFacade interface {
	// ExpenseSummary totals expenses per category over a date range.
	ExpenseSummary(ctx context.Context, from, to time.Time) (*dto.ExpenseSummaryResponse, error)

	// SalesReport buckets sales totals over a date range by day/week/month.
	SalesReport(ctx context.Context, from, to time.Time, grouping domain.SalesGrouping) (*dto.SalesReportResponse, error)

	// DailySummary aggregates a single day's sales.
	DailySummary(ctx context.Context, day time.Time) (*domain.DailySalesSummary, error)

	// TopSellingItems ranks items by revenue over a date range.
	TopSellingItems(ctx context.Context, from, to time.Time, limit int) ([]domain.TopItemRow, error)

	// InventoryReport returns valuation rows plus the low-stock listing.
	InventoryReport(ctx context.Context) (*dto.InventoryReportResponse, error)
}
