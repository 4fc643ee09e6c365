package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the row shape of the expenses table.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	UserID      string          `db:"user_id"`
	CategoryID  string          `db:"category_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	ExpenseDate time.Time       `db:"expense_date"`
	AuditFields
}
