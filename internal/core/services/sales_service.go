package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portsrepo "github.com/cafeledger/cafe_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// salesService provides sale recording, querying and voiding. The atomic
// stock work happens in the repository; the service validates the request
// and computes the total before anything touches the database.
type salesService struct {
	saleRepo      portsrepo.SaleRepositoryFacade
	inventoryRepo portsrepo.InventoryRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
}

// NewSalesService creates a new sales service.
func NewSalesService(saleRepo portsrepo.SaleRepositoryFacade, inventoryRepo portsrepo.InventoryRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.SalesSvcFacade {
	return &salesService{
		saleRepo:      saleRepo,
		inventoryRepo: inventoryRepo,
		userRepo:      userRepo,
	}
}

// Ensure salesService implements the portssvc.SalesSvcFacade interface
var _ portssvc.SalesSvcFacade = (*salesService)(nil)

func (s *salesService) RecordSale(ctx context.Context, req dto.RecordSaleRequest, userID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: a sale needs at least one line item", apperrors.ErrValidation)
	}
	if !domain.IsValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line quantity must be positive for item %s", apperrors.ErrValidation, line.ItemID)
		}
		if line.UnitPrice.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: line unit price must be positive for item %s", apperrors.ErrValidation, line.ItemID)
		}
	}

	now := time.Now()
	saleDate := now
	if req.SaleDate != nil && !req.SaleDate.IsZero() {
		saleDate = *req.SaleDate
	}

	saleID := uuid.NewString()
	items := make([]domain.SaleItem, len(req.Items))
	total := decimal.Zero
	for i, line := range req.Items {
		items[i] = domain.SaleItem{
			SaleItemID: uuid.NewString(),
			SaleID:     saleID,
			ItemID:     line.ItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
		}
		total = total.Add(items[i].ExtendedPrice())
	}

	sale := domain.Sale{
		SaleID:        saleID,
		UserID:        userID,
		SaleDate:      saleDate,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.saleRepo.SaveSale(ctx, sale, items); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	logger.Info("Sale recorded",
		slog.String("sale_id", saleID),
		slog.String("total", total.String()),
		slog.Int("lines", len(items)),
	)

	sale.Items = items
	return &sale, nil
}

func (s *salesService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale by ID: %w", err)
	}
	return sale, nil
}

func (s *salesService) ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: date range end precedes start", apperrors.ErrValidation)
	}
	sales, err := s.saleRepo.ListSales(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

// VoidSale reverses a sale. Only managers and admins may void.
func (s *salesService) VoidSale(ctx context.Context, saleID string, reason string, requestingUserID string) error {
	if reason == "" {
		return fmt.Errorf("%w: a void reason is required", apperrors.ErrValidation)
	}

	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return fmt.Errorf("failed to load requesting user: %w", err)
	}
	if !requester.Role.AtLeast(domain.RoleManager) {
		return fmt.Errorf("voiding sales requires the manager role: %w", apperrors.ErrForbidden)
	}

	if err := s.saleRepo.VoidSale(ctx, saleID, requestingUserID, reason); err != nil {
		return fmt.Errorf("failed to void sale: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Sale voided",
		slog.String("sale_id", saleID),
		slog.String("voided_by", requestingUserID),
	)
	return nil
}
