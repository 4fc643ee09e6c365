package services

import (
	"context"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
)

// AuditSvcFacade exposes the append-only system log to administrators.
type AuditSvcFacade interface {
	// ListAuditLogs retrieves entries newest first. Admin only.
	ListAuditLogs(ctx context.Context, limit, offset int, requestingUserID string) ([]domain.AuditLog, error)
}
