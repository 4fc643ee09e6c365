package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portsrepo "github.com/cafeledger/cafe_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetExpenseSummaryByCategory totals expenses per category over a date range.
// Ranges are inclusive start, exclusive end, like every other range here.
func (r *reportingRepository) GetExpenseSummaryByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryExpenseRow, error) {
	query := `
		SELECT
			c.category_id,
			c.name AS category_name,
			COALESCE(SUM(e.amount), 0) AS total_amount,
			COUNT(e.expense_id) AS expense_count
		FROM expenses e
		JOIN categories c ON e.category_id = c.category_id
		WHERE e.expense_date >= $1 AND e.expense_date < $2
		GROUP BY c.category_id, c.name
		ORDER BY total_amount DESC
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying expense summary data: %w", err)
	}
	defer rows.Close()

	var result []domain.CategoryExpenseRow
	for rows.Next() {
		var row domain.CategoryExpenseRow
		if err := rows.Scan(
			&row.CategoryID,
			&row.CategoryName,
			&row.TotalAmount,
			&row.Count,
		); err != nil {
			return nil, fmt.Errorf("error scanning expense summary row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense summary rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.CategoryExpenseRow{}, nil
	}
	return result, nil
}

// GetSalesTrend buckets sales totals by day/week/month over a date range.
// Voided sales never count.
func (r *reportingRepository) GetSalesTrend(ctx context.Context, from, to time.Time, grouping domain.SalesGrouping) ([]domain.SalesTrendRow, error) {
	// grouping is validated upstream; it only ever reaches the query as one
	// of the date_trunc keywords.
	query := fmt.Sprintf(`
		SELECT
			date_trunc('%s', sale_date) AS bucket,
			COALESCE(SUM(total_amount), 0) AS total_amount,
			COUNT(*) AS sale_count
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
			AND voided = FALSE
		GROUP BY bucket
		ORDER BY bucket
	`, string(grouping))

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying sales trend data: %w", err)
	}
	defer rows.Close()

	var result []domain.SalesTrendRow
	for rows.Next() {
		var row domain.SalesTrendRow
		if err := rows.Scan(
			&row.Bucket,
			&row.TotalAmount,
			&row.Count,
		); err != nil {
			return nil, fmt.Errorf("error scanning sales trend row: %w", err)
		}
		if row.Count > 0 {
			row.AverageSale = row.TotalAmount.Div(decimal.NewFromInt(row.Count)).Round(2)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales trend rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.SalesTrendRow{}, nil
	}
	return result, nil
}

// GetTopSellingItems ranks items by revenue over a date range.
func (r *reportingRepository) GetTopSellingItems(ctx context.Context, from, to time.Time, limit int) ([]domain.TopItemRow, error) {
	if limit <= 0 {
		limit = 5
	}

	query := `
		SELECT
			i.item_id,
			i.name,
			COALESCE(SUM(si.quantity), 0) AS quantity_sold,
			COALESCE(SUM(si.quantity * si.unit_price), 0) AS revenue
		FROM sale_items si
		JOIN sales s ON si.sale_id = s.sale_id
		JOIN inventory i ON si.item_id = i.item_id
		WHERE s.sale_date >= $1 AND s.sale_date < $2
			AND s.voided = FALSE
		GROUP BY i.item_id, i.name
		ORDER BY revenue DESC
		LIMIT $3
	`

	rows, err := r.Pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top selling items: %w", err)
	}
	defer rows.Close()

	var result []domain.TopItemRow
	for rows.Next() {
		var row domain.TopItemRow
		if err := rows.Scan(
			&row.ItemID,
			&row.Name,
			&row.QuantitySold,
			&row.Revenue,
		); err != nil {
			return nil, fmt.Errorf("error scanning top item row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top item rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.TopItemRow{}, nil
	}
	return result, nil
}

// GetDailySalesSummary aggregates one day's sales with a payment-method breakdown.
func (r *reportingRepository) GetDailySalesSummary(ctx context.Context, day time.Time) (*domain.DailySalesSummary, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	summary := &domain.DailySalesSummary{
		Date:        dayStart,
		TotalSales:  decimal.Zero,
		AverageSale: decimal.Zero,
	}

	totalsQuery := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
			AND voided = FALSE
	`
	if err := r.Pool.QueryRow(ctx, totalsQuery, dayStart, dayEnd).Scan(&summary.TotalSales, &summary.Count); err != nil {
		return nil, fmt.Errorf("error querying daily sales totals: %w", err)
	}
	if summary.Count > 0 {
		summary.AverageSale = summary.TotalSales.Div(decimal.NewFromInt(summary.Count)).Round(2)
	}

	methodQuery := `
		SELECT payment_method, COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
			AND voided = FALSE
		GROUP BY payment_method
		ORDER BY payment_method
	`
	rows, err := r.Pool.Query(ctx, methodQuery, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("error querying payment method breakdown: %w", err)
	}
	defer rows.Close()

	summary.PaymentMethods = []domain.PaymentMethodRow{}
	for rows.Next() {
		var row domain.PaymentMethodRow
		if err := rows.Scan(&row.Method, &row.TotalAmount, &row.Count); err != nil {
			return nil, fmt.Errorf("error scanning payment method row: %w", err)
		}
		summary.PaymentMethods = append(summary.PaymentMethods, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment method rows: %w", err)
	}

	topItems, err := r.GetTopSellingItems(ctx, dayStart, dayEnd, 5)
	if err != nil {
		return nil, err
	}
	summary.TopItems = topItems

	return summary, nil
}

// GetInventoryValuation returns quantity*unit_cost per item.
func (r *reportingRepository) GetInventoryValuation(ctx context.Context) ([]domain.InventoryValuationRow, error) {
	query := `
		SELECT item_id, name, quantity, unit_cost, quantity * unit_cost AS value
		FROM inventory
		ORDER BY name
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying inventory valuation: %w", err)
	}
	defer rows.Close()

	var result []domain.InventoryValuationRow
	for rows.Next() {
		var row domain.InventoryValuationRow
		if err := rows.Scan(
			&row.ItemID,
			&row.Name,
			&row.Quantity,
			&row.UnitCost,
			&row.Value,
		); err != nil {
			return nil, fmt.Errorf("error scanning inventory valuation row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory valuation rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.InventoryValuationRow{}, nil
	}
	return result, nil
}
