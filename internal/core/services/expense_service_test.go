package services_test

import (
	"context"
	"testing"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/core/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo  *MockExpenseRepository
	mockCategoryRepo *MockCategoryRepository
	mockUserRepo     *MockUserRepository
	mockAuditRepo    *MockAuditRepository
	service          portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockCategoryRepo, suite.mockUserRepo, suite.mockAuditRepo)
}

func (suite *ExpenseServiceTestSuite) TestRecordExpense_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	category := &domain.Category{CategoryID: uuid.NewString(), Name: "Ingredients", Type: domain.CategoryExpense}
	req := dto.RecordExpenseRequest{
		CategoryID:  category.CategoryID,
		Amount:      decimal.RequireFromString("42.80"),
		Description: "coffee beans",
		ExpenseDate: timeMustParse("2026-03-14"),
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, category.CategoryID).Return(category, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(expense domain.Expense) bool {
		return expense.CategoryID == category.CategoryID &&
			expense.UserID == userID &&
			expense.Amount.Equal(req.Amount) &&
			expense.Description == "coffee beans" &&
			expense.ExpenseDate.Equal(req.ExpenseDate)
	})).Return(nil).Once()
	suite.mockAuditRepo.On("InsertAuditLog", ctx, mock.Anything).Return(nil).Once()

	expense, err := suite.service.RecordExpense(ctx, req, userID)

	suite.Require().NoError(err)
	suite.NotEmpty(expense.ExpenseID)
	suite.True(expense.Amount.Equal(req.Amount))
	suite.Equal(req.ExpenseDate, expense.ExpenseDate)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestRecordExpense_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		CategoryID:  uuid.NewString(),
		Amount:      decimal.Zero,
		ExpenseDate: timeMustParse("2026-03-14"),
	}

	expense, err := suite.service.RecordExpense(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestRecordExpense_IncomeCategoryRejected() {
	ctx := context.Background()
	category := &domain.Category{CategoryID: uuid.NewString(), Name: "Catering", Type: domain.CategoryIncome}
	req := dto.RecordExpenseRequest{
		CategoryID:  category.CategoryID,
		Amount:      decimal.RequireFromString("10.00"),
		ExpenseDate: timeMustParse("2026-03-14"),
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, category.CategoryID).Return(category, nil).Once()

	expense, err := suite.service.RecordExpense(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestRecordExpense_UnknownCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.RecordExpenseRequest{
		CategoryID:  categoryID,
		Amount:      decimal.RequireFromString("10.00"),
		ExpenseDate: timeMustParse("2026-03-14"),
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	expense, err := suite.service.RecordExpense(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// Ensures reads return exactly what was written: amount, category, date and
// description survive the round trip untouched.
func (suite *ExpenseServiceTestSuite) TestGetExpenseByID_RoundTrip() {
	ctx := context.Background()
	stored := &domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserID:      uuid.NewString(),
		CategoryID:  uuid.NewString(),
		Amount:      decimal.RequireFromString("42.80"),
		Description: "coffee beans",
		ExpenseDate: timeMustParse("2026-03-14"),
	}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, stored.ExpenseID).Return(stored, nil).Once()

	got, err := suite.service.GetExpenseByID(ctx, stored.ExpenseID)

	suite.Require().NoError(err)
	suite.True(got.Amount.Equal(stored.Amount))
	suite.Equal(stored.CategoryID, got.CategoryID)
	suite.Equal(stored.ExpenseDate, got.ExpenseDate)
	suite.Equal(stored.Description, got.Description)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NonAdminForbidden() {
	ctx := context.Background()
	staff := &domain.User{UserID: uuid.NewString(), Role: domain.RoleStaff, IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, staff.UserID).Return(staff, nil).Once()

	err := suite.service.DeleteExpense(ctx, uuid.NewString(), staff.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_AdminSuccess() {
	ctx := context.Background()
	admin := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin, IsActive: true}
	expenseID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", ctx, expenseID, admin.UserID).Return(nil).Once()
	suite.mockAuditRepo.On("InsertAuditLog", ctx, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == domain.AuditDelete && entry.TableName == "expenses" && entry.RecordID == expenseID
	})).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, expenseID, admin.UserID)

	suite.Require().NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_InvertedRange() {
	ctx := context.Background()
	from := timeMustParse("2026-02-01")
	to := timeMustParse("2026-01-01")

	expenses, err := suite.service.ListExpenses(ctx, domain.ExpenseFilter{From: &from, To: &to})

	suite.Require().Error(err)
	suite.Nil(expenses)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
