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

// inventoryService provides stock management. Quantity changes always go
// through the repository's atomic stock-change path so every movement has a
// matching ledger entry.
type inventoryService struct {
	inventoryRepo portsrepo.InventoryRepositoryFacade
	auditRepo     portsrepo.AuditRepositoryFacade
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade, auditRepo portsrepo.AuditRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
	}
}

// Ensure inventoryService implements the portssvc.InventorySvcFacade interface
var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) AddItem(ctx context.Context, req dto.AddInventoryItemRequest, creatorUserID string) (*domain.InventoryItem, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: item name is required", apperrors.ErrValidation)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: initial quantity cannot be negative", apperrors.ErrValidation)
	}
	if req.UnitCost.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: unit cost cannot be negative", apperrors.ErrValidation)
	}
	if req.ReorderLevel < 0 {
		return nil, fmt.Errorf("%w: reorder level cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	item := domain.InventoryItem{
		ItemID:       uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		ReorderLevel: req.ReorderLevel,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.Quantity > 0 {
		item.LastRestockedAt = &now
	}

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add inventory item: %w", err)
	}

	if err := s.auditRepo.InsertAuditLog(ctx, domain.AuditLog{
		UserID:     &creatorUserID,
		Action:     domain.AuditCreate,
		TableName:  "inventory",
		RecordID:   item.ItemID,
		OccurredAt: now,
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to audit item creation", slog.String("error", err.Error()), slog.String("item_id", item.ItemID))
	}

	return &item, nil
}

func (s *inventoryService) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item by ID: %w", err)
	}
	return item, nil
}

func (s *inventoryService) ListItems(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error) {
	items, err := s.inventoryRepo.ListItems(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateInventoryItemRequest, requestingUserID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory item for update: %w", err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: item name cannot be empty", apperrors.ErrValidation)
		}
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.UnitCost != nil {
		if req.UnitCost.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: unit cost cannot be negative", apperrors.ErrValidation)
		}
		item.UnitCost = *req.UnitCost
	}
	if req.ReorderLevel != nil {
		if *req.ReorderLevel < 0 {
			return nil, fmt.Errorf("%w: reorder level cannot be negative", apperrors.ErrValidation)
		}
		item.ReorderLevel = *req.ReorderLevel
	}

	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = requestingUserID

	if err := s.inventoryRepo.UpdateItem(ctx, *item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	if err := s.auditRepo.InsertAuditLog(ctx, domain.AuditLog{
		UserID:     &requestingUserID,
		Action:     domain.AuditUpdate,
		TableName:  "inventory",
		RecordID:   itemID,
		OccurredAt: item.LastUpdatedAt,
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to audit item update", slog.String("error", err.Error()), slog.String("item_id", itemID))
	}

	return item, nil
}

// Restock increases the quantity. Zero or negative quantities are rejected;
// corrections go through Adjust instead.
func (s *inventoryService) Restock(ctx context.Context, itemID string, quantity int64, notes string, userID string) (*domain.InventoryItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: restock quantity must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	item, err := s.inventoryRepo.ApplyStockChange(ctx, domain.InventoryTransaction{
		TransactionID: uuid.NewString(),
		ItemID:        itemID,
		Type:          domain.StockRestock,
		QuantityDelta: quantity,
		UserID:        userID,
		Notes:         notes,
		OccurredAt:    now,
		CreatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restock item: %w", err)
	}
	return item, nil
}

// Adjust applies a signed manual correction. A zero delta is meaningless
// and rejected; negative results are blocked by the repository.
func (s *inventoryService) Adjust(ctx context.Context, itemID string, delta int64, reason string, userID string) (*domain.InventoryItem, error) {
	if delta == 0 {
		return nil, fmt.Errorf("%w: adjustment delta cannot be zero", apperrors.ErrValidation)
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: adjustment reason is required", apperrors.ErrValidation)
	}

	now := time.Now()
	item, err := s.inventoryRepo.ApplyStockChange(ctx, domain.InventoryTransaction{
		TransactionID: uuid.NewString(),
		ItemID:        itemID,
		Type:          domain.StockAdjustment,
		QuantityDelta: delta,
		UserID:        userID,
		Notes:         reason,
		OccurredAt:    now,
		CreatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	if item.Quantity <= item.ReorderLevel {
		middleware.GetLoggerFromCtx(ctx).Warn("Item at or below reorder level after adjustment",
			slog.String("item_id", item.ItemID),
			slog.Int64("quantity", item.Quantity),
			slog.Int64("reorder_level", item.ReorderLevel),
		)
	}
	return item, nil
}

func (s *inventoryService) ListLowStockItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.inventoryRepo.ListLowStockItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	return items, nil
}

func (s *inventoryService) GetTransactionHistory(ctx context.Context, itemID string, limit int) ([]domain.InventoryTransaction, error) {
	// Verify the item exists so an empty history is distinguishable from a typo.
	if _, err := s.inventoryRepo.FindItemByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("failed to load item for history: %w", err)
	}

	txns, err := s.inventoryRepo.ListTransactionsForItem(ctx, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock transactions: %w", err)
	}
	return txns, nil
}
