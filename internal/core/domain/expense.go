package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded business expense.
// Amount is always positive; the category determines its meaning.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`  // Primary Key (UUID)
	UserID      string          `json:"userID"`     // FK -> users.user_id (owner)
	CategoryID  string          `json:"categoryID"` // FK -> categories.category_id
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ExpenseDate time.Time       `json:"expenseDate"` // Date the expense occurred
	AuditFields
}

// ExpenseFilter narrows expense listings. Zero values mean "no constraint".
type ExpenseFilter struct {
	From       *time.Time
	To         *time.Time
	CategoryID string
	UserID     string
	Limit      int
	Offset     int
}
