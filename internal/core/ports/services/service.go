package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and is
// shared by the HTTP handlers and the CLI.
type ServiceContainer struct {
	User      UserSvcFacade
	Auth      AuthSvcFacade
	Category  CategorySvcFacade
	Expense   ExpenseSvcFacade
	Inventory InventorySvcFacade
	Sales     SalesSvcFacade
	Reporting ReportingSvcFacade
	Audit     AuditSvcFacade
}
