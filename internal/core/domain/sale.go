package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a completed sales transaction composed of one or more
// line items. TotalAmount always equals the sum of the line extended prices.
type Sale struct {
	SaleID        string          `json:"saleID"` // Primary Key (UUID)
	UserID        string          `json:"userID"` // FK -> users.user_id (staff who recorded it)
	SaleDate      time.Time       `json:"saleDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes"`
	Voided        bool            `json:"voided"`
	VoidReason    string          `json:"voidReason,omitempty"`
	AuditFields
	Items []SaleItem `json:"items,omitempty"` // Often loaded separately
}

// SaleItem is a single line of a sale. Lines are created and deleted only
// together with their parent sale.
type SaleItem struct {
	SaleItemID string          `json:"saleItemID"` // Primary Key (UUID)
	SaleID     string          `json:"saleID"`     // FK -> sales.sale_id
	ItemID     string          `json:"itemID"`     // FK -> inventory.item_id
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// ExtendedPrice returns quantity times unit price for the line.
func (i SaleItem) ExtendedPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

var paymentMethods = map[string]struct{}{
	"cash":  {},
	"card":  {},
	"upi":   {},
	"other": {},
}

// IsValidPaymentMethod reports whether the tender type is one the schema
// accepts.
func IsValidPaymentMethod(method string) bool {
	_, ok := paymentMethods[method]
	return ok
}

// SaleFilter narrows sale listings. Zero values mean "no constraint".
type SaleFilter struct {
	From          *time.Time
	To            *time.Time
	UserID        string
	PaymentMethod string
	IncludeVoided bool
	Limit         int
	Offset        int
}
