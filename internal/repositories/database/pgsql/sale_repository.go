package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portsrepo "github.com/cafeledger/cafe_ledger_app/internal/core/ports/repositories"
	"github.com/cafeledger/cafe_ledger_app/internal/models"
	"github.com/cafeledger/cafe_ledger_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSaleRepository struct {
	BaseRepository
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// newPgxSaleRepository creates a new repository for sale and line item data.
func newPgxSaleRepository(pool *pgxpool.Pool, inventoryRepo portsrepo.InventoryRepositoryFacade) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
		inventoryRepo:  inventoryRepo,
	}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// SaveSale persists a sale, its line items, the per-line inventory decrements
// and the matching stock ledger entries within a DB transaction. The item
// rows are locked first so concurrent sales cannot oversell the same stock.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem) error {
	inventoryRepo := r.inventoryRepo

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := sale.CreatedAt
	userID := sale.CreatedBy

	// 1. Insert the sale header
	modelSale := mapping.ToModelSale(sale)
	saleQuery := `
		INSERT INTO sales (
			sale_id, user_id, sale_date, total_amount, payment_method, notes, voided,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, saleQuery,
		modelSale.SaleID,
		modelSale.UserID,
		modelSale.SaleDate,
		modelSale.TotalAmount,
		modelSale.PaymentMethod,
		modelSale.Notes,
		modelSale.Voided,
		modelSale.CreatedAt,
		modelSale.CreatedBy,
		modelSale.LastUpdatedAt,
		modelSale.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert sale "+modelSale.SaleID, err)
	}

	// 2. Lock the affected items and gather the per-item decrements
	deltas := make(map[string]int64, len(items))
	for _, line := range items {
		deltas[line.ItemID] -= line.Quantity
	}
	itemIDs := make([]string, 0, len(deltas))
	for itemID := range deltas {
		itemIDs = append(itemIDs, itemID)
	}

	lockedItems, err := inventoryRepo.FindItemsByIDsForUpdate(ctx, tx, itemIDs)
	if err != nil {
		return err
	}

	// 3. Verify stock before touching anything else
	for itemID, delta := range deltas {
		item := lockedItems[itemID]
		if item.Quantity+delta < 0 {
			return fmt.Errorf("item %s has %d on hand, sale needs %d: %w",
				item.Name, item.Quantity, -delta, apperrors.ErrInsufficientStock)
		}
	}

	// 4. Apply the decrements
	if err := inventoryRepo.ApplyQuantityDeltasInTx(ctx, tx, deltas, userID); err != nil {
		return apperrors.NewAppError(500, "failed to apply stock decrements", err)
	}

	// 5. Insert the line items
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO sale_items (sale_item_id, sale_id, item_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, line := range items {
		m := mapping.ToModelSaleItem(line)
		batch.Queue(lineQuery,
			m.SaleItemID,
			m.SaleID,
			m.ItemID,
			m.Quantity,
			m.UnitPrice,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert line items for sale "+modelSale.SaleID, err)
	}

	// 6. Append one ledger entry per line so the stock history carries
	// the sale reference
	ledger := make([]domain.InventoryTransaction, 0, len(items))
	for _, line := range items {
		ledger = append(ledger, domain.InventoryTransaction{
			TransactionID: uuid.NewString(),
			ItemID:        line.ItemID,
			Type:          domain.StockSale,
			QuantityDelta: -line.Quantity,
			UserID:        userID,
			Notes:         "sale " + sale.SaleID,
			OccurredAt:    now,
			CreatedAt:     now,
		})
	}
	if err := inventoryRepo.InsertTransactionsInTx(ctx, tx, ledger); err != nil {
		return err
	}

	// 7. Record the sale in the audit trail within the same scope
	if err := insertAuditLogTx(ctx, tx, domain.AuditLog{
		UserID:     &userID,
		Action:     domain.AuditCreate,
		TableName:  "sales",
		RecordID:   sale.SaleID,
		OccurredAt: now,
	}); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// VoidSale marks the sale voided, restores the sold quantities as adjustment
// ledger entries and writes a VOID audit entry, all in one transaction.
func (r *PgxSaleRepository) VoidSale(ctx context.Context, saleID string, voidingUserID string, reason string) error {
	inventoryRepo := r.inventoryRepo

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now()

	// Mark the sale voided; a second void is a validation failure.
	markQuery := `
		UPDATE sales
		SET voided = TRUE, void_reason = $1, last_updated_at = $2, last_updated_by = $3
		WHERE sale_id = $4 AND voided = FALSE;
	`
	cmdTag, err := tx.Exec(ctx, markQuery, reason, now, voidingUserID, saleID)
	if err != nil {
		return fmt.Errorf("failed to mark sale voided: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sales WHERE sale_id = $1);`, saleID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check sale existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("sale not found: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("sale %s is already voided: %w", saleID, apperrors.ErrValidation)
	}

	// Read the lines to know what to put back
	lines, err := findSaleItemsTx(ctx, tx, saleID)
	if err != nil {
		return err
	}

	deltas := make(map[string]int64, len(lines))
	for _, line := range lines {
		deltas[line.ItemID] += line.Quantity
	}
	itemIDs := make([]string, 0, len(deltas))
	for itemID := range deltas {
		itemIDs = append(itemIDs, itemID)
	}

	if _, err := inventoryRepo.FindItemsByIDsForUpdate(ctx, tx, itemIDs); err != nil {
		return err
	}
	if err := inventoryRepo.ApplyQuantityDeltasInTx(ctx, tx, deltas, voidingUserID); err != nil {
		return apperrors.NewAppError(500, "failed to restore stock for voided sale "+saleID, err)
	}

	ledger := make([]domain.InventoryTransaction, 0, len(lines))
	for _, line := range lines {
		ledger = append(ledger, domain.InventoryTransaction{
			TransactionID: uuid.NewString(),
			ItemID:        line.ItemID,
			Type:          domain.StockAdjustment,
			QuantityDelta: line.Quantity,
			UserID:        voidingUserID,
			Notes:         "void sale " + saleID + ": " + reason,
			OccurredAt:    now,
			CreatedAt:     now,
		})
	}
	if err := inventoryRepo.InsertTransactionsInTx(ctx, tx, ledger); err != nil {
		return err
	}

	if err := insertAuditLogTx(ctx, tx, domain.AuditLog{
		UserID:     &voidingUserID,
		Action:     domain.AuditVoid,
		TableName:  "sales",
		RecordID:   saleID,
		Details:    reason,
		OccurredAt: now,
	}); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

const saleColumns = `sale_id, user_id, sale_date, total_amount, payment_method, notes, voided, void_reason,
		created_at, created_by, last_updated_at, last_updated_by`

func scanSaleRow(row pgx.Row) (*models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.UserID,
		&m.SaleDate,
		&m.TotalAmount,
		&m.PaymentMethod,
		&m.Notes,
		&m.Voided,
		&m.VoidReason,
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

// FindSaleByID retrieves a sale with its line items.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	m, err := scanSaleRow(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}

	lineQuery := `
		SELECT sale_item_id, sale_id, item_id, quantity, unit_price
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY sale_item_id;
	`
	rows, err := r.Pool.Query(ctx, lineQuery, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items for sale %s: %w", saleID, err)
	}
	defer rows.Close()

	lines := []models.SaleItem{}
	for rows.Next() {
		var line models.SaleItem
		err := rows.Scan(
			&line.SaleItemID,
			&line.SaleID,
			&line.ItemID,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item row: %w", err)
		}
		lines = append(lines, line)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating line item rows: %w", rows.Err())
	}

	d := mapping.ToDomainSale(*m)
	d.Items = mapping.ToDomainSaleItemSlice(lines)
	return &d, nil
}

// ListSales retrieves sales matching the filter, newest first, lines excluded.
func (r *PgxSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	args := []any{}
	if !filter.IncludeVoided {
		query += ` AND voided = FALSE`
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND sale_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		// Exclusive end, matching the reporting queries.
		args = append(args, *filter.To)
		query += ` AND sale_date < $` + strconv.Itoa(len(args))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += ` AND user_id = $` + strconv.Itoa(len(args))
	}
	if filter.PaymentMethod != "" {
		args = append(args, filter.PaymentMethod)
		query += ` AND payment_method = $` + strconv.Itoa(len(args))
	}
	args = append(args, limit)
	query += ` ORDER BY sale_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, offset)
	query += ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		m, err := scanSaleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", rows.Err())
	}

	return mapping.ToDomainSaleSlice(sales), nil
}

// findSaleItemsTx reads a sale's lines inside an open transaction.
func findSaleItemsTx(ctx context.Context, tx pgx.Tx, saleID string) ([]domain.SaleItem, error) {
	query := `
		SELECT sale_item_id, sale_id, item_id, quantity, unit_price
		FROM sale_items
		WHERE sale_id = $1;
	`
	rows, err := tx.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items for sale %s: %w", saleID, err)
	}
	defer rows.Close()

	lines := []models.SaleItem{}
	for rows.Next() {
		var line models.SaleItem
		err := rows.Scan(
			&line.SaleItemID,
			&line.SaleID,
			&line.ItemID,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item row: %w", err)
		}
		lines = append(lines, line)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating line item rows: %w", rows.Err())
	}

	return mapping.ToDomainSaleItemSlice(lines), nil
}
