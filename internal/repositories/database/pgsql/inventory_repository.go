package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portsrepo "github.com/cafeledger/cafe_ledger_app/internal/core/ports/repositories"
	"github.com/cafeledger/cafe_ledger_app/internal/models"
	"github.com/cafeledger/cafe_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInventoryRepository implements portsrepo.InventoryRepositoryFacade
var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const inventoryColumns = `item_id, name, description, quantity, unit_cost, reorder_level,
		last_restocked_at, created_at, created_by, last_updated_at, last_updated_by`

func scanInventoryItem(row pgx.Row) (*models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID,
		&m.Name,
		&m.Description,
		&m.Quantity,
		&m.UnitCost,
		&m.ReorderLevel,
		&m.LastRestockedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
        INSERT INTO inventory (item_id, name, description, quantity, unit_cost, reorder_level,
            last_restocked_at, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.Name,
		m.Description,
		m.Quantity,
		m.UnitCost,
		m.ReorderLevel,
		m.LastRestockedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("inventory item %q already exists: %w", item.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save inventory item: %w", err)
	}
	return nil
}

func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE item_id = $1;`
	m, err := scanInventoryItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by ID %s: %w", itemID, err)
	}
	d := mapping.ToDomainInventoryItem(*m)
	return &d, nil
}

func (r *PgxInventoryRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.InventoryItem, error) {
	if len(itemIDs) == 0 {
		return map[string]domain.InventoryItem{}, nil
	}

	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE item_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items by IDs: %w", err)
	}
	defer rows.Close()

	items := make(map[string]domain.InventoryItem)
	for rows.Next() {
		m, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items[m.ItemID] = mapping.ToDomainInventoryItem(*m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating inventory item rows: %w", rows.Err())
	}

	return items, nil
}

func (r *PgxInventoryRepository) ListItems(ctx context.Context, limit int, offset int) ([]domain.InventoryItem, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		m, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items = append(items, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating inventory item rows: %w", rows.Err())
	}

	return mapping.ToDomainInventoryItemSlice(items), nil
}

func (r *PgxInventoryRepository) ListLowStockItems(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE quantity <= reorder_level ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock items: %w", err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		m, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items = append(items, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating low stock rows: %w", rows.Err())
	}

	return mapping.ToDomainInventoryItemSlice(items), nil
}

func (r *PgxInventoryRepository) ListTransactionsForItem(ctx context.Context, itemID string, limit int) ([]domain.InventoryTransaction, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT transaction_id, item_id, transaction_type, quantity_delta, user_id, notes, occurred_at, created_at
		FROM inventory_transactions
		WHERE item_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock ledger for item %s: %w", itemID, err)
	}
	defer rows.Close()

	txns := []models.InventoryTransaction{}
	for rows.Next() {
		var m models.InventoryTransaction
		err := rows.Scan(
			&m.TransactionID,
			&m.ItemID,
			&m.Type,
			&m.QuantityDelta,
			&m.UserID,
			&m.Notes,
			&m.OccurredAt,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock ledger row: %w", err)
		}
		txns = append(txns, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating stock ledger rows: %w", rows.Err())
	}

	return mapping.ToDomainInventoryTransactionSlice(txns), nil
}

func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
        UPDATE inventory
        SET name = $1, description = $2, unit_cost = $3, reorder_level = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE item_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Description,
		m.UnitCost,
		m.ReorderLevel,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ItemID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("inventory item %q already exists: %w", item.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update item query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("inventory item not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// ApplyStockChange locks the item row, applies the signed delta and appends
// the matching ledger entry, all in one transaction. The quantity is never
// allowed below zero.
func (r *PgxInventoryRepository) ApplyStockChange(ctx context.Context, change domain.InventoryTransaction) (*domain.InventoryItem, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	locked, err := r.FindItemsByIDsForUpdate(ctx, tx, []string{change.ItemID})
	if err != nil {
		return nil, err
	}
	item := locked[change.ItemID]

	newQuantity := item.Quantity + change.QuantityDelta
	if newQuantity < 0 {
		return nil, fmt.Errorf("item %s has %d on hand, change of %d not possible: %w",
			item.Name, item.Quantity, change.QuantityDelta, apperrors.ErrInsufficientStock)
	}

	now := change.OccurredAt
	if now.IsZero() {
		now = time.Now()
	}

	query := `
        UPDATE inventory
        SET quantity = $1, last_updated_at = $2, last_updated_by = $3
        WHERE item_id = $4;
    `
	if change.Type == domain.StockRestock {
		query = `
        UPDATE inventory
        SET quantity = $1, last_updated_at = $2, last_updated_by = $3, last_restocked_at = $2
        WHERE item_id = $4;
    `
	}
	if _, err := tx.Exec(ctx, query, newQuantity, now, change.UserID, change.ItemID); err != nil {
		return nil, fmt.Errorf("failed to update quantity for item %s: %w", change.ItemID, err)
	}

	if err := r.InsertTransactionsInTx(ctx, tx, []domain.InventoryTransaction{change}); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	item.Quantity = newQuantity
	item.LastUpdatedAt = now
	item.LastUpdatedBy = change.UserID
	if change.Type == domain.StockRestock {
		item.LastRestockedAt = &now
	}
	return &item, nil
}

// FindItemsByIDsForUpdate retrieves multiple items by IDs and locks the rows for update.
// Must be called within a transaction.
func (r *PgxInventoryRepository) FindItemsByIDsForUpdate(ctx context.Context, tx pgx.Tx, itemIDs []string) (map[string]domain.InventoryItem, error) {
	if len(itemIDs) == 0 {
		return map[string]domain.InventoryItem{}, nil
	}

	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE item_id = ANY($1) FOR UPDATE;`
	rows, err := tx.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items for update: %w", err)
	}
	defer rows.Close()

	items := make(map[string]domain.InventoryItem)
	for rows.Next() {
		m, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked inventory row: %w", err)
		}
		items[m.ItemID] = mapping.ToDomainInventoryItem(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked inventory rows: %w", err)
	}

	if len(items) != len(itemIDs) {
		missing := []string{}
		for _, id := range itemIDs {
			if _, found := items[id]; !found {
				missing = append(missing, id)
			}
		}
		slog.WarnContext(ctx, "Some inventory items requested for update lock were not found", "missing_items", missing)
		return nil, fmt.Errorf("%w: could not find or lock all requested items, missing: %v", apperrors.ErrNotFound, missing)
	}

	return items, nil
}

// ApplyQuantityDeltasInTx applies signed quantity deltas within an open
// transaction. Callers must have locked the rows and verified the deltas do
// not take any quantity below zero; the CHECK constraint is the backstop.
func (r *PgxInventoryRepository) ApplyQuantityDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]int64, updaterUserID string) error {
	if len(deltas) == 0 {
		return nil
	}

	query := `
		UPDATE inventory
		SET quantity = quantity + $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1;
	`
	now := time.Now()
	batch := &pgx.Batch{}
	itemIDs := make([]string, 0, len(deltas))
	for itemID, delta := range deltas {
		if delta != 0 {
			batch.Queue(query, itemID, delta, now, updaterUserID)
			itemIDs = append(itemIDs, itemID)
		}
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to apply quantity delta for item %s: %w", itemIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 {
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: item %s not found during quantity update", apperrors.ErrNotFound, itemIDs[i])
			}
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close quantity update batch: %w", err)
	}
	return batchErr
}

// InsertTransactionsInTx appends stock ledger entries within an open transaction.
func (r *PgxInventoryRepository) InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.InventoryTransaction) error {
	if len(txns) == 0 {
		return nil
	}

	query := `
		INSERT INTO inventory_transactions (transaction_id, item_id, transaction_type, quantity_delta, user_id, notes, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, txn := range txns {
		m := mapping.ToModelInventoryTransaction(txn)
		batch.Queue(query,
			m.TransactionID,
			m.ItemID,
			m.Type,
			m.QuantityDelta,
			m.UserID,
			m.Notes,
			m.OccurredAt,
			m.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert stock ledger entries: %w", err)
	}
	return nil
}
