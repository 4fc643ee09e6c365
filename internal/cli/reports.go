package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
)

func (a *App) reportsMenu(ctx context.Context) {
	for {
		fmt.Println()
		fmt.Println("Reports")
		fmt.Println("1. Daily summary")
		fmt.Println("2. Expense summary by category")
		fmt.Println("3. Sales trend")
		fmt.Println("4. Top selling items")
		fmt.Println("5. Inventory valuation")
		fmt.Println("0. Back")

		choice, err := a.prompt("> ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.dailySummary(ctx)
		case "2":
			a.expenseSummary(ctx)
		case "3":
			a.salesTrend(ctx)
		case "4":
			a.topItems(ctx)
		case "5":
			a.inventoryReport(ctx)
		case "0":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

// promptRange reads a from/to date pair, defaulting to the last 30 days.
func (a *App) promptRange() (time.Time, time.Time, error) {
	now := time.Now()
	from, err := a.promptDate("From (YYYY-MM-DD, blank for 30 days ago): ", now.AddDate(0, 0, -30))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := a.promptDate("To (YYYY-MM-DD, blank for today): ", now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func (a *App) dailySummary(ctx context.Context) {
	day, err := a.promptDate("Day (YYYY-MM-DD, blank for today): ", time.Now())
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}

	summary, err := a.services.Reporting.DailySummary(ctx, day)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}

	fmt.Printf("Sales on %s: %d sales, total %s, average %s\n",
		summary.Date.Format("2006-01-02"), summary.Count,
		summary.TotalSales.StringFixed(2), summary.AverageSale.StringFixed(2))
	for _, pm := range summary.PaymentMethods {
		fmt.Printf("  %-6s  %10s  (%d)\n", pm.Method, pm.TotalAmount.StringFixed(2), pm.Count)
	}
	if len(summary.TopItems) > 0 {
		fmt.Println("Top items:")
		for _, item := range summary.TopItems {
			fmt.Printf("  %-24s  sold %4d  revenue %s\n", item.Name, item.QuantitySold, item.Revenue.StringFixed(2))
		}
	}
}

func (a *App) expenseSummary(ctx context.Context) {
	from, to, err := a.promptRange()
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}

	report, err := a.services.Reporting.ExpenseSummary(ctx, from, to)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}

	for _, row := range report.Categories {
		fmt.Printf("%-24s  %10s  (%d expenses)\n", row.CategoryName, row.TotalAmount.StringFixed(2), row.Count)
	}
	fmt.Printf("Total: %s\n", report.Total.StringFixed(2))
}

func (a *App) salesTrend(ctx context.Context) {
	from, to, err := a.promptRange()
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	grouping, err := a.prompt("Group by (day/week/month, blank for day): ")
	if err != nil {
		return
	}
	if grouping == "" {
		grouping = "day"
	}

	report, err := a.services.Reporting.SalesReport(ctx, from, to, domain.SalesGrouping(grouping))
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}

	for _, bucket := range report.Buckets {
		fmt.Printf("%s  %10s  (%d sales, avg %s)\n",
			bucket.Bucket.Format("2006-01-02"), bucket.TotalAmount.StringFixed(2), bucket.Count, bucket.AverageSale.StringFixed(2))
	}
	fmt.Printf("Total: %s\n", report.Total.StringFixed(2))
}

func (a *App) topItems(ctx context.Context) {
	from, to, err := a.promptRange()
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}

	rows, err := a.services.Reporting.TopSellingItems(ctx, from, to, 10)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	for i, row := range rows {
		fmt.Printf("%2d. %-24s  sold %4d  revenue %s\n", i+1, row.Name, row.QuantitySold, row.Revenue.StringFixed(2))
	}
}

func (a *App) inventoryReport(ctx context.Context) {
	report, err := a.services.Reporting.InventoryReport(ctx)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}

	for _, row := range report.Rows {
		fmt.Printf("%-24s  qty %5d  @ %8s  = %10s\n",
			row.Name, row.Quantity, row.UnitCost.StringFixed(2), row.Value.StringFixed(2))
	}
	fmt.Printf("Total inventory value: %s\n", report.TotalValue.StringFixed(2))
	if len(report.LowStock) > 0 {
		fmt.Println("Low stock:")
		for _, item := range report.LowStock {
			fmt.Printf("  %-24s  qty %d (reorder at %d)\n", item.Name, item.Quantity, item.ReorderLevel)
		}
	}
}
