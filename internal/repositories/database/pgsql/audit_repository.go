package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portsrepo "github.com/cafeledger/cafe_ledger_app/internal/core/ports/repositories"
	"github.com/cafeledger/cafe_ledger_app/internal/models"
	"github.com/cafeledger/cafe_ledger_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepositoryFacade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

const insertAuditQuery = `
	INSERT INTO audit_logs (audit_id, user_id, action, table_name, record_id, details, occurred_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

// insertAuditLogTx appends an audit entry using the given transaction. Other
// repositories in this package call it so their audit entries commit or roll
// back together with the change they record. Missing IDs and timestamps are
// filled in here.
func insertAuditLogTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error {
	if entry.AuditID == "" {
		entry.AuditID = uuid.NewString()
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now()
	}
	m := mapping.ToModelAuditLog(entry)
	_, err := tx.Exec(ctx, insertAuditQuery,
		m.AuditID,
		m.UserID,
		m.Action,
		m.TableName,
		m.RecordID,
		m.Details,
		m.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}

func (r *PgxAuditRepository) InsertAuditLog(ctx context.Context, entry domain.AuditLog) error {
	if entry.AuditID == "" {
		entry.AuditID = uuid.NewString()
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now()
	}
	m := mapping.ToModelAuditLog(entry)
	_, err := r.Pool.Exec(ctx, insertAuditQuery,
		m.AuditID,
		m.UserID,
		m.Action,
		m.TableName,
		m.RecordID,
		m.Details,
		m.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}

func (r *PgxAuditRepository) InsertAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error {
	return insertAuditLogTx(ctx, tx, entry)
}

func (r *PgxAuditRepository) ListAuditLogs(ctx context.Context, limit int, offset int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT audit_id, user_id, action, table_name, record_id, details, occurred_at
		FROM audit_logs
		ORDER BY occurred_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditLog{}
	for rows.Next() {
		var m models.AuditLog
		err := rows.Scan(
			&m.AuditID,
			&m.UserID,
			&m.Action,
			&m.TableName,
			&m.RecordID,
			&m.Details,
			&m.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		entries = append(entries, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating audit log rows: %w", rows.Err())
	}

	return mapping.ToDomainAuditLogSlice(entries), nil
}
