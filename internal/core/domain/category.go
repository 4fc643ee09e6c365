package domain

// CategoryType distinguishes expense categories from income categories.
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

// IsValid reports whether the category type is one of the known types.
func (t CategoryType) IsValid() bool {
	return t == CategoryExpense || t == CategoryIncome
}

// Category represents a user-extensible classification for expenses and income.
type Category struct {
	CategoryID  string       `json:"categoryID"` // Primary Key (UUID)
	Name        string       `json:"name"`
	Type        CategoryType `json:"type"`
	Description string       `json:"description"`
	AuditFields
}
