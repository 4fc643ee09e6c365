package models

// Category is the row shape of the categories table.
type Category struct {
	CategoryID  string `db:"category_id"`
	Name        string `db:"name"`
	Type        string `db:"type"` // 'expense' or 'income'
	Description string `db:"description"`
	AuditFields
}
