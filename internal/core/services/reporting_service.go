package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portsrepo "github.com/cafeledger/cafe_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// reportingService assembles read-only reports from aggregate queries.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, inventoryRepo portsrepo.InventoryRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func validateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: report range is required", apperrors.ErrValidation)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: report range end precedes start", apperrors.ErrValidation)
	}
	return nil
}

func (s *reportingService) ExpenseSummary(ctx context.Context, from, to time.Time) (*dto.ExpenseSummaryResponse, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetExpenseSummaryByCategory(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build expense summary: %w", err)
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.TotalAmount)
	}

	return &dto.ExpenseSummaryResponse{
		From:       from,
		To:         to,
		Categories: rows,
		Total:      total,
	}, nil
}

func (s *reportingService) SalesReport(ctx context.Context, from, to time.Time, grouping domain.SalesGrouping) (*dto.SalesReportResponse, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if !grouping.IsValid() {
		return nil, fmt.Errorf("%w: unknown grouping %q", apperrors.ErrValidation, grouping)
	}

	buckets, err := s.reportingRepo.GetSalesTrend(ctx, from, to, grouping)
	if err != nil {
		return nil, fmt.Errorf("failed to build sales report: %w", err)
	}

	total := decimal.Zero
	for _, bucket := range buckets {
		total = total.Add(bucket.TotalAmount)
	}

	return &dto.SalesReportResponse{
		From:    from,
		To:      to,
		GroupBy: string(grouping),
		Buckets: buckets,
		Total:   total,
	}, nil
}

func (s *reportingService) DailySummary(ctx context.Context, day time.Time) (*domain.DailySalesSummary, error) {
	if day.IsZero() {
		return nil, fmt.Errorf("%w: summary day is required", apperrors.ErrValidation)
	}

	summary, err := s.reportingRepo.GetDailySalesSummary(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to build daily summary: %w", err)
	}
	return summary, nil
}

func (s *reportingService) TopSellingItems(ctx context.Context, from, to time.Time, limit int) ([]domain.TopItemRow, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetTopSellingItems(ctx, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank top selling items: %w", err)
	}
	return rows, nil
}

func (s *reportingService) InventoryReport(ctx context.Context) (*dto.InventoryReportResponse, error) {
	rows, err := s.reportingRepo.GetInventoryValuation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build inventory valuation: %w", err)
	}

	totalValue := decimal.Zero
	for _, row := range rows {
		totalValue = totalValue.Add(row.Value)
	}

	lowStock, err := s.inventoryRepo.ListLowStockItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items for report: %w", err)
	}

	return &dto.InventoryReportResponse{
		GeneratedAt: time.Now(),
		Rows:        rows,
		TotalValue:  totalValue,
		LowStock:    dto.ToListInventoryResponse(lowStock).Items,
	}, nil
}
