package services_test

import (
	"context"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// timeMustParse parses a YYYY-MM-DD date for test fixtures.
func timeMustParse(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	args := m.Called(ctx, tokenHash)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetUserActive(ctx context.Context, userID string, active bool, updaterUserID string, now time.Time) error {
	args := m.Called(ctx, userID, active, updaterUserID, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, now time.Time) error {
	args := m.Called(ctx, userID, now)
	return args.Error(0)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) ClearResetToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, now)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, userID, deletedAt, deleterUserID)
	return args.Error(0)
}

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) InsertAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) InsertAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListAuditLogs(ctx context.Context, limit int, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, limit, offset)
	var entries []domain.AuditLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLog)
	}
	return entries, args.Error(1)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	args := m.Called(ctx, categoryType)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) CountExpensesForCategory(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string, deleterUserID string) error {
	args := m.Called(ctx, categoryID, deleterUserID)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string, deleterUserID string) error {
	args := m.Called(ctx, expenseID, deleterUserID)
	return args.Error(0)
}

// --- Mock InventoryRepository ---

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	var item *domain.InventoryItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.InventoryItem)
	}
	return item, args.Error(1)
}

func (m *MockInventoryRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.InventoryItem, error) {
	args := m.Called(ctx, itemIDs)
	var items map[string]domain.InventoryItem
	if args.Get(0) != nil {
		items = args.Get(0).(map[string]domain.InventoryItem)
	}
	return items, args.Error(1)
}

func (m *MockInventoryRepository) ListItems(ctx context.Context, limit int, offset int) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, limit, offset)
	var items []domain.InventoryItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.InventoryItem)
	}
	return items, args.Error(1)
}

func (m *MockInventoryRepository) ListLowStockItems(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	var items []domain.InventoryItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.InventoryItem)
	}
	return items, args.Error(1)
}

func (m *MockInventoryRepository) ListTransactionsForItem(ctx context.Context, itemID string, limit int) ([]domain.InventoryTransaction, error) {
	args := m.Called(ctx, itemID, limit)
	var txns []domain.InventoryTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.InventoryTransaction)
	}
	return txns, args.Error(1)
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) ApplyStockChange(ctx context.Context, change domain.InventoryTransaction) (*domain.InventoryItem, error) {
	args := m.Called(ctx, change)
	var item *domain.InventoryItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.InventoryItem)
	}
	return item, args.Error(1)
}

func (m *MockInventoryRepository) FindItemsByIDsForUpdate(ctx context.Context, tx pgx.Tx, itemIDs []string) (map[string]domain.InventoryItem, error) {
	args := m.Called(ctx, tx, itemIDs)
	var items map[string]domain.InventoryItem
	if args.Get(0) != nil {
		items = args.Get(0).(map[string]domain.InventoryItem)
	}
	return items, args.Error(1)
}

func (m *MockInventoryRepository) ApplyQuantityDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]int64, updaterUserID string) error {
	args := m.Called(ctx, tx, deltas, updaterUserID)
	return args.Error(0)
}

func (m *MockInventoryRepository) InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.InventoryTransaction) error {
	args := m.Called(ctx, tx, txns)
	return args.Error(0)
}

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	var sale *domain.Sale
	if args.Get(0) != nil {
		sale = args.Get(0).(*domain.Sale)
	}
	return sale, args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, filter)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem) error {
	args := m.Called(ctx, sale, items)
	return args.Error(0)
}

func (m *MockSaleRepository) VoidSale(ctx context.Context, saleID string, voidingUserID string, reason string) error {
	args := m.Called(ctx, saleID, voidingUserID, reason)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetExpenseSummaryByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryExpenseRow, error) {
	args := m.Called(ctx, from, to)
	var rows []domain.CategoryExpenseRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.CategoryExpenseRow)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) GetSalesTrend(ctx context.Context, from, to time.Time, grouping domain.SalesGrouping) ([]domain.SalesTrendRow, error) {
	args := m.Called(ctx, from, to, grouping)
	var rows []domain.SalesTrendRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.SalesTrendRow)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) GetTopSellingItems(ctx context.Context, from, to time.Time, limit int) ([]domain.TopItemRow, error) {
	args := m.Called(ctx, from, to, limit)
	var rows []domain.TopItemRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.TopItemRow)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) GetDailySalesSummary(ctx context.Context, day time.Time) (*domain.DailySalesSummary, error) {
	args := m.Called(ctx, day)
	var summary *domain.DailySalesSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.DailySalesSummary)
	}
	return summary, args.Error(1)
}

func (m *MockReportingRepository) GetInventoryValuation(ctx context.Context) ([]domain.InventoryValuationRow, error) {
	args := m.Called(ctx)
	var rows []domain.InventoryValuationRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.InventoryValuationRow)
	}
	return rows, args.Error(1)
}
