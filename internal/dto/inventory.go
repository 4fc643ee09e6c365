package dto

import (
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddInventoryItemRequest defines the data needed to add an inventory item.
type AddInventoryItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Quantity     int64           `json:"quantity" binding:"gte=0"`
	UnitCost     decimal.Decimal `json:"unitCost" binding:"required"`
	ReorderLevel int64           `json:"reorderLevel" binding:"gte=0"`
}

// UpdateInventoryItemRequest defines the data allowed for updating an item.
// Quantity is deliberately absent; stock only moves through restock,
// adjustment, or sale operations so the ledger stays complete.
type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	UnitCost     *decimal.Decimal `json:"unitCost"`
	ReorderLevel *int64           `json:"reorderLevel"`
}

// RestockRequest defines the data needed to restock an item.
type RestockRequest struct {
	Quantity int64  `json:"quantity" binding:"required,gt=0"`
	Notes    string `json:"notes"`
}

// AdjustStockRequest defines a manual stock correction. Delta may be
// negative but must not take the quantity below zero.
type AdjustStockRequest struct {
	Delta int64  `json:"delta" binding:"required"`
	Notes string `json:"notes" binding:"required"`
}

// ListInventoryParams defines query parameters for listing inventory items.
type ListInventoryParams struct {
	LowStockOnly bool `form:"lowStockOnly"`
	Limit        int  `form:"limit,default=50"`
	Offset       int  `form:"offset,default=0"`
}

// InventoryItemResponse defines the data returned for an inventory item.
type InventoryItemResponse struct {
	ItemID          string          `json:"itemID"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Quantity        int64           `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unitCost"`
	ReorderLevel    int64           `json:"reorderLevel"`
	LowStock        bool            `json:"lowStock"`
	LastRestockedAt *time.Time      `json:"lastRestockedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to its DTO
func ToInventoryItemResponse(it *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:          it.ItemID,
		Name:            it.Name,
		Description:     it.Description,
		Quantity:        it.Quantity,
		UnitCost:        it.UnitCost,
		ReorderLevel:    it.ReorderLevel,
		LowStock:        it.Quantity <= it.ReorderLevel,
		LastRestockedAt: it.LastRestockedAt,
		CreatedAt:       it.CreatedAt,
	}
}

// ListInventoryResponse wraps the list of inventory items.
type ListInventoryResponse struct {
	Items []InventoryItemResponse `json:"items"`
}

// ToListInventoryResponse converts domain items to the list DTO
func ToListInventoryResponse(items []domain.InventoryItem) ListInventoryResponse {
	out := make([]InventoryItemResponse, len(items))
	for i := range items {
		out[i] = ToInventoryItemResponse(&items[i])
	}
	return ListInventoryResponse{Items: out}
}

// InventoryTransactionResponse defines one ledger entry for an item.
type InventoryTransactionResponse struct {
	TransactionID string    `json:"transactionID"`
	ItemID        string    `json:"itemID"`
	Type          string    `json:"type"`
	QuantityDelta int64     `json:"quantityDelta"`
	UserID        string    `json:"userID"`
	Notes         string    `json:"notes,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// ToInventoryTransactionResponse converts a domain.InventoryTransaction to its DTO
func ToInventoryTransactionResponse(t *domain.InventoryTransaction) InventoryTransactionResponse {
	return InventoryTransactionResponse{
		TransactionID: t.TransactionID,
		ItemID:        t.ItemID,
		Type:          string(t.Type),
		QuantityDelta: t.QuantityDelta,
		UserID:        t.UserID,
		Notes:         t.Notes,
		OccurredAt:    t.OccurredAt,
	}
}

// ListInventoryTransactionsResponse wraps an item's ledger history.
type ListInventoryTransactionsResponse struct {
	Transactions []InventoryTransactionResponse `json:"transactions"`
}

// ToListInventoryTransactionsResponse converts domain ledger entries to the list DTO
func ToListInventoryTransactionsResponse(ts []domain.InventoryTransaction) ListInventoryTransactionsResponse {
	out := make([]InventoryTransactionResponse, len(ts))
	for i := range ts {
		out[i] = ToInventoryTransactionResponse(&ts[i])
	}
	return ListInventoryTransactionsResponse{Transactions: out}
}
