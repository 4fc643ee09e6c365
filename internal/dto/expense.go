package dto

import (
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordExpenseRequest defines the data needed to record an expense.
type RecordExpenseRequest struct {
	CategoryID  string          `json:"categoryID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	ExpenseDate time.Time       `json:"expenseDate" binding:"required"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
// Pointers distinguish omitted fields from zero values.
type UpdateExpenseRequest struct {
	CategoryID  *string          `json:"categoryID"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	ExpenseDate *time.Time       `json:"expenseDate"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
	CategoryID string     `form:"categoryID"`
	UserID     string     `form:"userID"`
	Limit      int        `form:"limit,default=20"`
	Offset     int        `form:"offset,default=0"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	UserID      string          `json:"userID"`
	CategoryID  string          `json:"categoryID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ExpenseDate time.Time       `json:"expenseDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		UserID:      e.UserID,
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate,
		CreatedAt:   e.CreatedAt,
	}
}

// ListExpensesResponse wraps the list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToListExpensesResponse converts domain expenses to the list DTO
func ToListExpensesResponse(es []domain.Expense) ListExpensesResponse {
	out := make([]ExpenseResponse, len(es))
	for i, e := range es {
		out[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{Expenses: out}
}
