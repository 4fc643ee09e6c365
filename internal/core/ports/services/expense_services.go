package services

import (
	"context"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
)

// ExpenseSvcFacade defines operations for recording and querying expenses.
type ExpenseSvcFacade interface {
	// RecordExpense validates and persists a new expense. Fails with
	// ErrValidation when the amount is not positive, ErrNotFound when the
	// category or user is unknown.
	RecordExpense(ctx context.Context, req dto.RecordExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// GetExpenseByID retrieves an expense by ID.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses matching the filter, newest first.
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error)

	// UpdateExpense updates an expense's amount, category, date or description.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error)

	// DeleteExpense removes an expense; the deletion is audit-logged.
	DeleteExpense(ctx context.Context, expenseID string, requestingUserID string) error
}
