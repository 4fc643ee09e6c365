package dto

import (
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleLineRequest is one line of a sale being recorded.
type SaleLineRequest struct {
	ItemID    string          `json:"itemID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// RecordSaleRequest defines the data needed to record a sale.
type RecordSaleRequest struct {
	PaymentMethod string            `json:"paymentMethod" binding:"required,oneof=cash card upi other"`
	SaleDate      *time.Time        `json:"saleDate"`
	Notes         string            `json:"notes"`
	Items         []SaleLineRequest `json:"items" binding:"required,min=1,dive"`
}

// VoidSaleRequest defines the data needed to void a sale.
type VoidSaleRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListSalesParams defines query parameters for listing sales.
type ListSalesParams struct {
	From          *time.Time `form:"from" time_format:"2006-01-02"`
	To            *time.Time `form:"to" time_format:"2006-01-02"`
	UserID        string     `form:"userID"`
	PaymentMethod string     `form:"paymentMethod"`
	IncludeVoided bool       `form:"includeVoided"`
	Limit         int        `form:"limit,default=20"`
	Offset        int        `form:"offset,default=0"`
}

// SaleItemResponse defines one line of a recorded sale.
type SaleItemResponse struct {
	SaleItemID    string          `json:"saleItemID"`
	ItemID        string          `json:"itemID"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	ExtendedPrice decimal.Decimal `json:"extendedPrice"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID        string             `json:"saleID"`
	UserID        string             `json:"userID"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	PaymentMethod string             `json:"paymentMethod"`
	SaleDate      time.Time          `json:"saleDate"`
	Notes         string             `json:"notes,omitempty"`
	Voided        bool               `json:"voided"`
	VoidReason    string             `json:"voidReason,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleItemResponse{
			SaleItemID:    it.SaleItemID,
			ItemID:        it.ItemID,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			ExtendedPrice: it.ExtendedPrice(),
		}
	}
	return SaleResponse{
		SaleID:        s.SaleID,
		UserID:        s.UserID,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		SaleDate:      s.SaleDate,
		Notes:         s.Notes,
		Voided:        s.Voided,
		VoidReason:    s.VoidReason,
		Items:         items,
		CreatedAt:     s.CreatedAt,
	}
}

// ListSalesResponse wraps the list of sales.
type ListSalesResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToListSalesResponse converts domain sales to the list DTO
func ToListSalesResponse(ss []domain.Sale) ListSalesResponse {
	out := make([]SaleResponse, len(ss))
	for i := range ss {
		out[i] = ToSaleResponse(&ss[i])
	}
	return ListSalesResponse{Sales: out}
}
