package repositories

import (
	"context"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// InventoryReader defines read operations for inventory data
type InventoryReader interface {
	// FindItemByID retrieves an inventory item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// FindItemsByIDs retrieves multiple items by their IDs.
	FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.InventoryItem, error)

	// ListItems retrieves a paginated list of items ordered by name.
	ListItems(ctx context.Context, limit int, offset int) ([]domain.InventoryItem, error)

	// ListLowStockItems retrieves items whose quantity is at or below the reorder level.
	ListLowStockItems(ctx context.Context) ([]domain.InventoryItem, error)

	// ListTransactionsForItem retrieves the append-only stock ledger for one item, newest first.
	ListTransactionsForItem(ctx context.Context, itemID string, limit int) ([]domain.InventoryTransaction, error)
}

// InventoryWriter defines write operations for inventory data
type InventoryWriter interface {
	// SaveItem persists a new inventory item.
	SaveItem(ctx context.Context, item domain.InventoryItem) error

	// UpdateItem updates an item's descriptive fields. Quantity is not
	// touched here; it only moves through ApplyStockChange or a sale.
	UpdateItem(ctx context.Context, item domain.InventoryItem) error

	// ApplyStockChange atomically applies a signed quantity delta to one item
	// and appends the matching InventoryTransaction. It fails with
	// ErrInsufficientStock when the resulting quantity would go negative and
	// ErrNotFound when the item does not exist. Restocks stamp last_restocked_at.
	ApplyStockChange(ctx context.Context, change domain.InventoryTransaction) (*domain.InventoryItem, error)
}

// InventoryTransactionSupport defines operations used by other repositories
// inside an already-open transaction (the sale recording scope).
type InventoryTransactionSupport interface {
	// FindItemsByIDsForUpdate selects items and row-locks them within a transaction.
	FindItemsByIDsForUpdate(ctx context.Context, tx pgx.Tx, itemIDs []string) (map[string]domain.InventoryItem, error)

	// ApplyQuantityDeltasInTx applies signed quantity deltas to the given
	// items within an open transaction. Callers must have locked the rows.
	ApplyQuantityDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]int64, updaterUserID string) error

	// InsertTransactionsInTx appends stock ledger entries within an open transaction.
	InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.InventoryTransaction) error
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
	InventoryTransactionSupport
}
