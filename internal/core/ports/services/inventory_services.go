package services

import (
	"context"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
)

// InventorySvcFacade defines operations for managing stock.
type InventorySvcFacade interface {
	// AddItem creates a new inventory item.
	AddItem(ctx context.Context, req dto.AddInventoryItemRequest, creatorUserID string) (*domain.InventoryItem, error)

	// GetItemByID retrieves an item by ID.
	GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// ListItems retrieves a paginated list of items.
	ListItems(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error)

	// UpdateItem updates an item's descriptive fields (name, description,
	// unit cost, reorder level). Quantity only moves via Restock/Adjust/sales.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateInventoryItemRequest, requestingUserID string) (*domain.InventoryItem, error)

	// Restock increases an item's quantity and appends a 'restock' ledger
	// entry in the same scope. Quantity must be positive (ErrValidation).
	Restock(ctx context.Context, itemID string, quantity int64, notes string, userID string) (*domain.InventoryItem, error)

	// Adjust applies a signed correction and appends an 'adjustment' ledger
	// entry. Fails with ErrInsufficientStock when the result would go negative.
	Adjust(ctx context.Context, itemID string, delta int64, reason string, userID string) (*domain.InventoryItem, error)

	// ListLowStockItems returns items with quantity at or below reorder level.
	ListLowStockItems(ctx context.Context) ([]domain.InventoryItem, error)

	// GetTransactionHistory returns the stock ledger for an item, newest first.
	GetTransactionHistory(ctx context.Context, itemID string, limit int) ([]domain.InventoryTransaction, error)
}
