package pgsql

import (
	portsrepo "github.com/cafeledger/cafe_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	inventoryRepo := newPgxInventoryRepository(dbPool)
	saleRepo := newPgxSaleRepository(dbPool, inventoryRepo)
	auditRepo := newPgxAuditRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:      userRepo,
		CategoryRepo:  categoryRepo,
		ExpenseRepo:   expenseRepo,
		InventoryRepo: inventoryRepo,
		SaleRepo:      saleRepo,
		AuditRepo:     auditRepo,
		ReportingRepo: reportingRepo,
	}
}
