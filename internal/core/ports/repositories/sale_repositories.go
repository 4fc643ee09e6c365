package repositories

import (
	"context"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale with its line items.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves sales matching the filter, newest first, lines excluded.
	ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale persists a sale, its line items, the per-line inventory
	// decrements and the matching 'sale' stock ledger entries in one
	// database transaction. Any line-item failure (unknown item,
	// insufficient stock) discards the whole scope.
	SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem) error

	// VoidSale marks the sale voided, restores the sold quantities as
	// adjustment ledger entries and writes a VOID audit entry, all in one
	// database transaction. Voiding an already-voided sale fails with
	// ErrValidation.
	VoidSale(ctx context.Context, saleID string, voidingUserID string, reason string) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
