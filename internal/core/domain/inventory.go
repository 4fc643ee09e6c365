package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem represents a stocked product. Quantity is only ever mutated
// through the stock-change operations (restock, sale, adjustment), each of
// which appends an InventoryTransaction in the same transaction scope.
type InventoryItem struct {
	ItemID          string          `json:"itemID"` // Primary Key (UUID)
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Quantity        int64           `json:"quantity"` // Never negative
	UnitCost        decimal.Decimal `json:"unitCost"`
	ReorderLevel    int64           `json:"reorderLevel"`
	LastRestockedAt *time.Time      `json:"lastRestockedAt,omitempty"`
	AuditFields
}

// StockTransactionType classifies an inventory quantity change.
type StockTransactionType string

const (
	StockRestock    StockTransactionType = "restock"
	StockSale       StockTransactionType = "sale"
	StockAdjustment StockTransactionType = "adjustment"
)

// IsValid reports whether the stock transaction type is known.
func (t StockTransactionType) IsValid() bool {
	return t == StockRestock || t == StockSale || t == StockAdjustment
}

// InventoryTransaction is one entry in the append-only stock ledger.
// QuantityDelta is signed: positive for restocks, negative for sales and
// downward adjustments. Entries are never updated or deleted.
type InventoryTransaction struct {
	TransactionID string               `json:"transactionID"` // Primary Key (UUID)
	ItemID        string               `json:"itemID"`        // FK -> inventory.item_id
	Type          StockTransactionType `json:"type"`
	QuantityDelta int64                `json:"quantityDelta"`
	UserID        string               `json:"userID"` // FK -> users.user_id
	Notes         string               `json:"notes"`
	OccurredAt    time.Time            `json:"occurredAt"`
	CreatedAt     time.Time            `json:"createdAt"`
}
