package services

import (
	"context"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
)

// SalesSvcFacade defines operations for recording and querying sales.
type SalesSvcFacade interface {
	// RecordSale validates and persists a sale with its line items in a
	// single atomic scope: stock is verified and decremented per line, a
	// 'sale' ledger entry is appended per line, and the total is computed
	// as the sum of line extended prices. Any failure aborts everything.
	RecordSale(ctx context.Context, req dto.RecordSaleRequest, userID string) (*domain.Sale, error)

	// GetSaleByID retrieves a sale with its line items.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves sales matching the filter, newest first.
	ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error)

	// VoidSale reverses a sale: restores quantities, marks the sale voided
	// with the given reason, and audit-logs the void. Admin/manager only.
	VoidSale(ctx context.Context, saleID string, reason string, requestingUserID string) error
}
