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

type SalesServiceTestSuite struct {
	suite.Suite
	mockSaleRepo      *MockSaleRepository
	mockInventoryRepo *MockInventoryRepository
	mockUserRepo      *MockUserRepository
	service           portssvc.SalesSvcFacade
}

func (suite *SalesServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewSalesService(suite.mockSaleRepo, suite.mockInventoryRepo, suite.mockUserRepo)
}

// --- RecordSale ---

func (suite *SalesServiceTestSuite) TestRecordSale_TotalAndLines() {
	ctx := context.Background()
	userID := uuid.NewString()
	latteID := uuid.NewString()
	muffinID := uuid.NewString()
	req := dto.RecordSaleRequest{
		PaymentMethod: "cash",
		Items: []dto.SaleLineRequest{
			{ItemID: latteID, Quantity: 2, UnitPrice: decimal.RequireFromString("3.50")},
			{ItemID: muffinID, Quantity: 1, UnitPrice: decimal.RequireFromString("2.25")},
		},
	}

	suite.mockSaleRepo.On("SaveSale", ctx,
		mock.MatchedBy(func(sale domain.Sale) bool {
			return sale.UserID == userID &&
				sale.PaymentMethod == "cash" &&
				sale.TotalAmount.Equal(decimal.RequireFromString("9.25")) &&
				!sale.Voided
		}),
		mock.MatchedBy(func(items []domain.SaleItem) bool {
			if len(items) != 2 {
				return false
			}
			return items[0].ItemID == latteID && items[0].Quantity == 2 &&
				items[1].ItemID == muffinID && items[1].Quantity == 1
		}),
	).Return(nil).Once()

	sale, err := suite.service.RecordSale(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.True(sale.TotalAmount.Equal(decimal.RequireFromString("9.25")))
	suite.Len(sale.Items, 2)
	suite.Equal(sale.SaleID, sale.Items[0].SaleID)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SalesServiceTestSuite) TestRecordSale_NoLines() {
	ctx := context.Background()

	sale, err := suite.service.RecordSale(ctx, dto.RecordSaleRequest{PaymentMethod: "cash"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything)
}

// Payment method is checked before any write so non-HTTP callers get the
// same rejection the binding tag gives the API.
func (suite *SalesServiceTestSuite) TestRecordSale_UnknownPaymentMethod() {
	ctx := context.Background()
	req := dto.RecordSaleRequest{
		PaymentMethod: "barter",
		Items: []dto.SaleLineRequest{
			{ItemID: uuid.NewString(), Quantity: 1, UnitPrice: decimal.RequireFromString("3.50")},
		},
	}

	sale, err := suite.service.RecordSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SalesServiceTestSuite) TestRecordSale_NonPositiveLine() {
	ctx := context.Background()
	req := dto.RecordSaleRequest{
		PaymentMethod: "card",
		Items: []dto.SaleLineRequest{
			{ItemID: uuid.NewString(), Quantity: 0, UnitPrice: decimal.RequireFromString("3.50")},
		},
	}

	sale, err := suite.service.RecordSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// An over-stock sale fails inside the repository transaction; nothing is
// committed and the service propagates the sentinel unchanged.
func (suite *SalesServiceTestSuite) TestRecordSale_InsufficientStock() {
	ctx := context.Background()
	req := dto.RecordSaleRequest{
		PaymentMethod: "cash",
		Items: []dto.SaleLineRequest{
			{ItemID: uuid.NewString(), Quantity: 500, UnitPrice: decimal.RequireFromString("3.50")},
		},
	}

	suite.mockSaleRepo.On("SaveSale", ctx, mock.Anything, mock.Anything).Return(apperrors.ErrInsufficientStock).Once()

	sale, err := suite.service.RecordSale(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

// --- VoidSale ---

func (suite *SalesServiceTestSuite) TestVoidSale_ManagerAllowed() {
	ctx := context.Background()
	saleID := uuid.NewString()
	managerID := uuid.NewString()
	manager := &domain.User{UserID: managerID, Role: domain.RoleManager}

	suite.mockUserRepo.On("FindUserByID", ctx, managerID).Return(manager, nil).Once()
	suite.mockSaleRepo.On("VoidSale", ctx, saleID, managerID, "customer refund").Return(nil).Once()

	err := suite.service.VoidSale(ctx, saleID, "customer refund", managerID)

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SalesServiceTestSuite) TestVoidSale_StaffForbidden() {
	ctx := context.Background()
	staffID := uuid.NewString()
	staff := &domain.User{UserID: staffID, Role: domain.RoleStaff}

	suite.mockUserRepo.On("FindUserByID", ctx, staffID).Return(staff, nil).Once()

	err := suite.service.VoidSale(ctx, uuid.NewString(), "customer refund", staffID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "VoidSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SalesServiceTestSuite) TestVoidSale_ReasonRequired() {
	ctx := context.Background()

	err := suite.service.VoidSale(ctx, uuid.NewString(), "", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *SalesServiceTestSuite) TestVoidSale_AlreadyVoided() {
	ctx := context.Background()
	saleID := uuid.NewString()
	adminID := uuid.NewString()
	admin := &domain.User{UserID: adminID, Role: domain.RoleAdmin}

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).Return(admin, nil).Once()
	suite.mockSaleRepo.On("VoidSale", ctx, saleID, adminID, "again").Return(apperrors.ErrValidation).Once()

	err := suite.service.VoidSale(ctx, saleID, "again", adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- ListSales ---

func (suite *SalesServiceTestSuite) TestListSales_InvertedRange() {
	ctx := context.Background()
	from := timeMustParse("2026-02-01")
	to := timeMustParse("2026-01-01")

	sales, err := suite.service.ListSales(ctx, domain.SaleFilter{From: &from, To: &to})

	suite.Require().Error(err)
	suite.Nil(sales)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestSalesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesServiceTestSuite))
}
