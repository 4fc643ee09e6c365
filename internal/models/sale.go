package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the row shape of the sales table.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	UserID        string          `db:"user_id"`
	SaleDate      time.Time       `db:"sale_date"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaymentMethod string          `db:"payment_method"`
	Notes         string          `db:"notes"`
	Voided        bool            `db:"voided"`
	VoidReason    sql.NullString  `db:"void_reason"`
	AuditFields
}

// SaleItem is the row shape of the sale_items table.
type SaleItem struct {
	SaleItemID string          `db:"sale_item_id"`
	SaleID     string          `db:"sale_id"`
	ItemID     string          `db:"item_id"`
	Quantity   int64           `db:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
}
