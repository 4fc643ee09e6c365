package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portsrepo "github.com/cafeledger/cafe_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// expenseService provides expense recording and querying.
type expenseService struct {
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	auditRepo    portsrepo.AuditRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, auditRepo portsrepo.AuditRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
	}
}

// Ensure expenseService implements the portssvc.ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) RecordExpense(ctx context.Context, req dto.RecordExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}
	if req.ExpenseDate.IsZero() {
		return nil, fmt.Errorf("%w: expense date is required", apperrors.ErrValidation)
	}

	// The category must exist and be an expense category.
	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category %s: %w", req.CategoryID, err)
	}
	if category.Type != domain.CategoryExpense {
		return nil, fmt.Errorf("%w: category %q is not an expense category", apperrors.ErrValidation, category.Name)
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserID:      creatorUserID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		ExpenseDate: req.ExpenseDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	if err := s.auditRepo.InsertAuditLog(ctx, domain.AuditLog{
		UserID:     &creatorUserID,
		Action:     domain.AuditCreate,
		TableName:  "expenses",
		RecordID:   expense.ExpenseID,
		OccurredAt: now,
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to audit expense creation", slog.String("error", err.Error()), slog.String("expense_id", expense.ExpenseID))
	}

	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: date range end precedes start", apperrors.ErrValidation)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense for update: %w", err)
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to load category %s: %w", *req.CategoryID, err)
		}
		if category.Type != domain.CategoryExpense {
			return nil, fmt.Errorf("%w: category %q is not an expense category", apperrors.ErrValidation, category.Name)
		}
		expense.CategoryID = *req.CategoryID
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.ExpenseDate != nil {
		if req.ExpenseDate.IsZero() {
			return nil, fmt.Errorf("%w: expense date cannot be zero", apperrors.ErrValidation)
		}
		expense.ExpenseDate = *req.ExpenseDate
	}

	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = requestingUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	if err := s.auditRepo.InsertAuditLog(ctx, domain.AuditLog{
		UserID:     &requestingUserID,
		Action:     domain.AuditUpdate,
		TableName:  "expenses",
		RecordID:   expenseID,
		OccurredAt: expense.LastUpdatedAt,
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to audit expense update", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
	}

	return expense, nil
}

// DeleteExpense removes an expense record. Only admins may delete.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, requestingUserID string) error {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return fmt.Errorf("failed to load requesting user: %w", err)
	}
	if requester.Role != domain.RoleAdmin {
		return fmt.Errorf("deleting expenses requires the admin role: %w", apperrors.ErrForbidden)
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID, requestingUserID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if err := s.auditRepo.InsertAuditLog(ctx, domain.AuditLog{
		UserID:     &requestingUserID,
		Action:     domain.AuditDelete,
		TableName:  "expenses",
		RecordID:   expenseID,
		OccurredAt: time.Now(),
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to audit expense deletion", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
	}
	return nil
}
