package repositories

import (
	"context"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AuditRepositoryFacade defines operations on the append-only audit log.
// There are deliberately no update or delete operations.
type AuditRepositoryFacade interface {
	// InsertAuditLog appends an entry outside any caller-managed transaction.
	InsertAuditLog(ctx context.Context, entry domain.AuditLog) error

	// InsertAuditLogInTx appends an entry within an open transaction so the
	// entry commits or rolls back together with the change it records.
	InsertAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error

	// ListAuditLogs retrieves entries newest first.
	ListAuditLogs(ctx context.Context, limit int, offset int) ([]domain.AuditLog, error)
}
