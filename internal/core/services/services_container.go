package services

import (
	portsrepo "github.com/cafeledger/cafe_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.AuditRepo, cfg)
	container.Auth = NewAuthService(repos.UserRepo, cfg)
	container.Category = NewCategoryService(repos.CategoryRepo, repos.UserRepo, repos.AuditRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.CategoryRepo, repos.UserRepo, repos.AuditRepo)
	container.Inventory = NewInventoryService(repos.InventoryRepo, repos.AuditRepo)
	container.Sales = NewSalesService(repos.SaleRepo, repos.InventoryRepo, repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.InventoryRepo)
	container.Audit = NewAuditService(repos.AuditRepo, repos.UserRepo)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.UserSvcFacade      = (*userService)(nil)
	_ portssvc.AuthSvcFacade      = (*authService)(nil)
	_ portssvc.CategorySvcFacade  = (*categoryService)(nil)
	_ portssvc.ExpenseSvcFacade   = (*expenseService)(nil)
	_ portssvc.InventorySvcFacade = (*inventoryService)(nil)
	_ portssvc.SalesSvcFacade     = (*salesService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
	_ portssvc.AuditSvcFacade     = (*auditService)(nil)
)
