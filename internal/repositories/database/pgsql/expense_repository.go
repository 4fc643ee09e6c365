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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
        INSERT INTO expenses (expense_id, user_id, category_id, amount, description, expense_date,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.UserID,
		m.CategoryID,
		m.Amount,
		m.Description,
		m.ExpenseDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("category or user does not exist: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT expense_id, user_id, category_id, amount, description, expense_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE expense_id = $1;
	`
	var m models.Expense
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&m.ExpenseID,
		&m.UserID,
		&m.CategoryID,
		&m.Amount,
		&m.Description,
		&m.ExpenseDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT expense_id, user_id, category_id, amount, description, expense_date,
               created_at, created_by, last_updated_at, last_updated_by
        FROM expenses
        WHERE 1=1
    `
	args := []any{}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND expense_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		// Exclusive end, matching the reporting queries.
		args = append(args, *filter.To)
		query += ` AND expense_date < $` + strconv.Itoa(len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += ` AND category_id = $` + strconv.Itoa(len(args))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += ` AND user_id = $` + strconv.Itoa(len(args))
	}
	args = append(args, limit)
	query += ` ORDER BY expense_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, offset)
	query += ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var m models.Expense
		err := rows.Scan(
			&m.ExpenseID,
			&m.UserID,
			&m.CategoryID,
			&m.Amount,
			&m.Description,
			&m.ExpenseDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return mapping.ToDomainExpenseSlice(expenses), nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
        UPDATE expenses
        SET category_id = $1, amount = $2, description = $3, expense_date = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE expense_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Amount,
		m.Description,
		m.ExpenseDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ExpenseID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("category does not exist: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to execute update expense query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// DeleteExpense removes the expense and appends the audit entry in one transaction.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string, deleterUserID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}

	if err := insertAuditLogTx(ctx, tx, domain.AuditLog{
		UserID:     &deleterUserID,
		Action:     domain.AuditDelete,
		TableName:  "expenses",
		RecordID:   expenseID,
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
