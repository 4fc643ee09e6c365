package dto

import (
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportRangeParams defines query parameters for date-ranged reports.
type ReportRangeParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// SalesReportParams defines query parameters for the sales trend report.
type SalesReportParams struct {
	From    time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To      time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
	GroupBy string    `form:"groupBy,default=day" binding:"omitempty,oneof=day week month"`
}

// TopItemsParams defines query parameters for the top-selling-items report.
type TopItemsParams struct {
	From  time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To    time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
	Limit int       `form:"limit,default=5" binding:"omitempty,gt=0"`
}

// ExpenseSummaryResponse is the expense-by-category report for a range.
type ExpenseSummaryResponse struct {
	From       time.Time                   `json:"from"`
	To         time.Time                   `json:"to"`
	Categories []domain.CategoryExpenseRow `json:"categories"`
	Total      decimal.Decimal             `json:"total"`
}

// SalesReportResponse is the bucketed sales trend report for a range.
type SalesReportResponse struct {
	From    time.Time              `json:"from"`
	To      time.Time              `json:"to"`
	GroupBy string                 `json:"groupBy"`
	Buckets []domain.SalesTrendRow `json:"buckets"`
	Total   decimal.Decimal        `json:"total"`
}

// InventoryReportResponse combines valuation with the low-stock listing.
type InventoryReportResponse struct {
	GeneratedAt time.Time                      `json:"generatedAt"`
	Rows        []domain.InventoryValuationRow `json:"rows"`
	TotalValue  decimal.Decimal                `json:"totalValue"`
	LowStock    []InventoryItemResponse        `json:"lowStock"`
}
