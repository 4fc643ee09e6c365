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

type InventoryServiceTestSuite struct {
	suite.Suite
	mockInventoryRepo *MockInventoryRepository
	mockAuditRepo     *MockAuditRepository
	service           portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.service = services.NewInventoryService(suite.mockInventoryRepo, suite.mockAuditRepo)
}

// --- AddItem ---

func (suite *InventoryServiceTestSuite) TestAddItem_Success() {
	ctx := context.Background()
	req := dto.AddInventoryItemRequest{
		Name:         "Whole Milk 1L",
		Description:  "Full-fat milk for lattes",
		Quantity:     10,
		UnitCost:     decimal.RequireFromString("1.20"),
		ReorderLevel: 5,
	}

	suite.mockInventoryRepo.On("SaveItem", ctx, mock.MatchedBy(func(item domain.InventoryItem) bool {
		return item.Name == req.Name &&
			item.Description == req.Description &&
			item.Quantity == 10 &&
			item.ReorderLevel == 5 &&
			item.LastRestockedAt != nil
	})).Return(nil).Once()
	suite.mockAuditRepo.On("InsertAuditLog", ctx, mock.Anything).Return(nil).Once()

	item, err := suite.service.AddItem(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotEmpty(item.ItemID)
	suite.Equal(req.Description, item.Description)
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_Description() {
	ctx := context.Background()
	itemID := uuid.NewString()
	existing := &domain.InventoryItem{ItemID: itemID, Name: "Whole Milk 1L", Description: "old label"}
	newDescription := "Full-fat milk for lattes"

	suite.mockInventoryRepo.On("FindItemByID", ctx, itemID).Return(existing, nil).Once()
	suite.mockInventoryRepo.On("UpdateItem", ctx, mock.MatchedBy(func(item domain.InventoryItem) bool {
		return item.ItemID == itemID && item.Description == newDescription
	})).Return(nil).Once()
	suite.mockAuditRepo.On("InsertAuditLog", ctx, mock.Anything).Return(nil).Once()

	item, err := suite.service.UpdateItem(ctx, itemID, dto.UpdateInventoryItemRequest{Description: &newDescription}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(newDescription, item.Description)
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestAddItem_NegativeQuantity() {
	ctx := context.Background()
	req := dto.AddInventoryItemRequest{
		Name:     "Whole Milk 1L",
		Quantity: -1,
		UnitCost: decimal.RequireFromString("1.20"),
	}

	item, err := suite.service.AddItem(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

// --- Restock ---

func (suite *InventoryServiceTestSuite) TestRestock_Success() {
	ctx := context.Background()
	itemID := uuid.NewString()
	userID := uuid.NewString()
	after := &domain.InventoryItem{ItemID: itemID, Name: "Whole Milk 1L", Quantity: 15, ReorderLevel: 5}

	suite.mockInventoryRepo.On("ApplyStockChange", ctx, mock.MatchedBy(func(change domain.InventoryTransaction) bool {
		return change.ItemID == itemID &&
			change.Type == domain.StockRestock &&
			change.QuantityDelta == 5 &&
			change.UserID == userID
	})).Return(after, nil).Once()

	item, err := suite.service.Restock(ctx, itemID, 5, "weekly delivery", userID)

	suite.Require().NoError(err)
	suite.Equal(int64(15), item.Quantity)
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRestock_ZeroQuantityRejected() {
	ctx := context.Background()

	item, err := suite.service.Restock(ctx, uuid.NewString(), 0, "", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "ApplyStockChange", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestRestock_NegativeQuantityRejected() {
	ctx := context.Background()

	item, err := suite.service.Restock(ctx, uuid.NewString(), -3, "", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Adjust ---

// A milk item with 10 on hand and reorder level 5: spoilage of 8 leaves 2 and
// a further 5 cannot come off.
func (suite *InventoryServiceTestSuite) TestAdjust_SpoilageThenInsufficient() {
	ctx := context.Background()
	itemID := uuid.NewString()
	userID := uuid.NewString()
	afterSpoilage := &domain.InventoryItem{ItemID: itemID, Name: "Whole Milk 1L", Quantity: 2, ReorderLevel: 5}

	suite.mockInventoryRepo.On("ApplyStockChange", ctx, mock.MatchedBy(func(change domain.InventoryTransaction) bool {
		return change.Type == domain.StockAdjustment && change.QuantityDelta == -8
	})).Return(afterSpoilage, nil).Once()

	item, err := suite.service.Adjust(ctx, itemID, -8, "spoiled batch", userID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), item.Quantity)
	suite.LessOrEqual(item.Quantity, item.ReorderLevel)

	suite.mockInventoryRepo.On("ApplyStockChange", ctx, mock.MatchedBy(func(change domain.InventoryTransaction) bool {
		return change.QuantityDelta == -5
	})).Return(nil, apperrors.ErrInsufficientStock).Once()

	item, err = suite.service.Adjust(ctx, itemID, -5, "more spoilage", userID)
	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)

	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestAdjust_ZeroDeltaRejected() {
	ctx := context.Background()

	item, err := suite.service.Adjust(ctx, uuid.NewString(), 0, "no-op", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InventoryServiceTestSuite) TestAdjust_ReasonRequired() {
	ctx := context.Background()

	item, err := suite.service.Adjust(ctx, uuid.NewString(), -1, "", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "ApplyStockChange", mock.Anything, mock.Anything)
}

// --- Transaction history ---

func (suite *InventoryServiceTestSuite) TestGetTransactionHistory_UnknownItem() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockInventoryRepo.On("FindItemByID", ctx, itemID).Return(nil, apperrors.ErrNotFound).Once()

	txns, err := suite.service.GetTransactionHistory(ctx, itemID, 50)

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "ListTransactionsForItem", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestGetTransactionHistory_Success() {
	ctx := context.Background()
	itemID := uuid.NewString()
	item := &domain.InventoryItem{ItemID: itemID, Name: "Whole Milk 1L"}
	history := []domain.InventoryTransaction{
		{TransactionID: uuid.NewString(), ItemID: itemID, Type: domain.StockRestock, QuantityDelta: 10},
		{TransactionID: uuid.NewString(), ItemID: itemID, Type: domain.StockSale, QuantityDelta: -2},
	}

	suite.mockInventoryRepo.On("FindItemByID", ctx, itemID).Return(item, nil).Once()
	suite.mockInventoryRepo.On("ListTransactionsForItem", ctx, itemID, 50).Return(history, nil).Once()

	txns, err := suite.service.GetTransactionHistory(ctx, itemID, 50)

	suite.Require().NoError(err)
	suite.Len(txns, 2)
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
