package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is the row shape of the inventory table.
type InventoryItem struct {
	ItemID          string          `db:"item_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Quantity        int64           `db:"quantity"`
	UnitCost        decimal.Decimal `db:"unit_cost"`
	ReorderLevel    int64           `db:"reorder_level"`
	LastRestockedAt sql.NullTime    `db:"last_restocked_at"`
	AuditFields
}

// InventoryTransaction is the row shape of the inventory_transactions table.
// The table is append-only; there are no update or delete paths for it.
type InventoryTransaction struct {
	TransactionID string    `db:"transaction_id"`
	ItemID        string    `db:"item_id"`
	Type          string    `db:"transaction_type"` // 'restock', 'sale', 'adjustment'
	QuantityDelta int64     `db:"quantity_delta"`
	UserID        string    `db:"user_id"`
	Notes         string    `db:"notes"`
	OccurredAt    time.Time `db:"occurred_at"`
	CreatedAt     time.Time `db:"created_at"`
}
