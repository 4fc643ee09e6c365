package pgsql

import (
	"context"
	"errors"
	"fmt"
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

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
        INSERT INTO categories (category_id, name, type, description,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.Type,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("category name %q already exists: %w", category.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, type, description, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE category_id = $1;
	`
	var m models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&m.CategoryID,
		&m.Name,
		&m.Type,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	d := mapping.ToDomainCategory(m)
	return &d, nil
}

func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, type, description, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE lower(name) = lower($1);
	`
	var m models.Category
	err := r.Pool.QueryRow(ctx, query, name).Scan(
		&m.CategoryID,
		&m.Name,
		&m.Type,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by name %s: %w", name, err)
	}
	d := mapping.ToDomainCategory(m)
	return &d, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	query := `
        SELECT category_id, name, type, description, created_at, created_by, last_updated_at, last_updated_by
        FROM categories
    `
	args := []any{}
	if categoryType != nil {
		query += ` WHERE type = $1`
		args = append(args, string(*categoryType))
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	cats := []models.Category{}
	for rows.Next() {
		var m models.Category
		err := rows.Scan(
			&m.CategoryID,
			&m.Name,
			&m.Type,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		cats = append(cats, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}

	return mapping.ToDomainCategorySlice(cats), nil
}

func (r *PgxCategoryRepository) CountExpensesForCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM expenses WHERE category_id = $1;`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count expenses for category %s: %w", categoryID, err)
	}
	return count, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
        UPDATE categories
        SET name = $1, type = $2, description = $3, last_updated_at = $4, last_updated_by = $5
        WHERE category_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Type,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.CategoryID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("category name %q already exists: %w", category.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update category query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// DeleteCategory removes the category and appends the audit entry in one
// transaction. Callers must have verified the category is unused.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string, deleterUserID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("category still referenced by expenses: %w", apperrors.ErrInUse)
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found: %w", apperrors.ErrNotFound)
	}

	if err := insertAuditLogTx(ctx, tx, domain.AuditLog{
		UserID:     &deleterUserID,
		Action:     domain.AuditDelete,
		TableName:  "categories",
		RecordID:   categoryID,
		OccurredAt: time.Now(),
	}); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
