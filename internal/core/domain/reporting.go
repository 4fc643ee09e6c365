package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesGrouping selects the bucket size for sales trend reports.
type SalesGrouping string

const (
	GroupByDay   SalesGrouping = "day"
	GroupByWeek  SalesGrouping = "week"
	GroupByMonth SalesGrouping = "month"
)

// IsValid reports whether the grouping is supported.
func (g SalesGrouping) IsValid() bool {
	return g == GroupByDay || g == GroupByWeek || g == GroupByMonth
}

// CategoryExpenseRow is one line of the expense-by-category summary.
type CategoryExpenseRow struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Count        int64           `json:"count"`
}

// SalesTrendRow is one time bucket of the sales trend report.
type SalesTrendRow struct {
	Bucket      time.Time       `json:"bucket"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int64           `json:"count"`
	AverageSale decimal.Decimal `json:"averageSale"`
}

// PaymentMethodRow breaks daily sales down by payment method.
type PaymentMethodRow struct {
	Method      string          `json:"method"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int64           `json:"count"`
}

// TopItemRow is one line of the top-selling-items report.
type TopItemRow struct {
	ItemID       string          `json:"itemID"`
	Name         string          `json:"name"`
	QuantitySold int64           `json:"quantitySold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// DailySalesSummary aggregates a single day's sales.
type DailySalesSummary struct {
	Date           time.Time          `json:"date"`
	TotalSales     decimal.Decimal    `json:"totalSales"`
	Count          int64              `json:"count"`
	AverageSale    decimal.Decimal    `json:"averageSale"`
	PaymentMethods []PaymentMethodRow `json:"paymentMethods"`
	TopItems       []TopItemRow       `json:"topItems"`
}

// InventoryValuationRow is one line of the inventory valuation report.
type InventoryValuationRow struct {
	ItemID   string          `json:"itemID"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
	Value    decimal.Decimal `json:"value"` // quantity * unit_cost
}
