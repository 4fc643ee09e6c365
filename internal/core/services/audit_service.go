package services

import (
	"context"
	"fmt"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portsrepo "github.com/cafeledger/cafe_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
)

// auditService exposes the append-only audit trail to administrators.
type auditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
	userRepo  portsrepo.UserRepositoryFacade
}

// NewAuditService creates a new audit service.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{
		auditRepo: auditRepo,
		userRepo:  userRepo,
	}
}

// Ensure auditService implements the portssvc.AuditSvcFacade interface
var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) ListAuditLogs(ctx context.Context, limit, offset int, requestingUserID string) ([]domain.AuditLog, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}
	if requester.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("the audit trail is admin only: %w", apperrors.ErrForbidden)
	}

	entries, err := s.auditRepo.ListAuditLogs(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return entries, nil
}
