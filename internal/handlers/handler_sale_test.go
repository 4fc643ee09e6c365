package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/internal/handlers"
	"github.com/cafeledger/cafe_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SalesService ---
type MockSalesService struct {
	mock.Mock
}

func (m *MockSalesService) RecordSale(ctx context.Context, req dto.RecordSaleRequest, userID string) (*domain.Sale, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSalesService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSalesService) ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSalesService) VoidSale(ctx context.Context, saleID string, reason string, requestingUserID string) error {
	args := m.Called(ctx, saleID, reason, requestingUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.SalesSvcFacade = (*MockSalesService)(nil)

// --- Test Suite ---
type SaleHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockSalesService *MockSalesService
	jwtSecret        string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *SaleHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cafeledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockSalesService = new(MockSalesService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterSaleRoutes(v1, suite.mockSalesService)
}

func (suite *SaleHandlerTestSuite) TestRecordSale_Success() {
	userID := uuid.NewString()
	itemID := uuid.NewString()
	reqBody := dto.RecordSaleRequest{
		PaymentMethod: "cash",
		Items: []dto.SaleLineRequest{
			{ItemID: itemID, Quantity: 2, UnitPrice: decimal.RequireFromString("3.50")},
		},
	}

	expected := &domain.Sale{
		SaleID:        uuid.NewString(),
		UserID:        userID,
		TotalAmount:   decimal.RequireFromString("7.00"),
		PaymentMethod: "cash",
		SaleDate:      time.Now(),
		Items: []domain.SaleItem{
			{SaleItemID: uuid.NewString(), ItemID: itemID, Quantity: 2, UnitPrice: decimal.RequireFromString("3.50")},
		},
	}

	suite.mockSalesService.On("RecordSale",
		mock.Anything,
		mock.MatchedBy(func(req dto.RecordSaleRequest) bool {
			return req.PaymentMethod == "cash" && len(req.Items) == 1 && req.Items[0].Quantity == 2
		}),
		userID,
	).Return(expected, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.SaleID, resp.SaleID)
	suite.True(resp.TotalAmount.Equal(expected.TotalAmount))
	suite.Len(resp.Items, 1)
	suite.True(resp.Items[0].ExtendedPrice.Equal(decimal.RequireFromString("7.00")))
	suite.mockSalesService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestRecordSale_EmptyItemsRejectedByBinding() {
	userID := uuid.NewString()
	body := []byte(`{"paymentMethod":"cash","items":[]}`)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSalesService.AssertNotCalled(suite.T(), "RecordSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestRecordSale_InsufficientStockMapsTo422() {
	userID := uuid.NewString()
	reqBody := dto.RecordSaleRequest{
		PaymentMethod: "card",
		Items: []dto.SaleLineRequest{
			{ItemID: uuid.NewString(), Quantity: 50, UnitPrice: decimal.RequireFromString("3.50")},
		},
	}

	suite.mockSalesService.On("RecordSale", mock.Anything, mock.Anything, userID).
		Return(nil, fmt.Errorf("stock check failed: %w", apperrors.ErrInsufficientStock)).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *SaleHandlerTestSuite) TestRecordSale_MissingTokenRejected() {
	body := []byte(`{"paymentMethod":"cash","items":[{"itemID":"x","quantity":1,"unitPrice":"2.25"}]}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSalesService.AssertNotCalled(suite.T(), "RecordSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestGetSale_NotFound() {
	userID := uuid.NewString()
	saleID := uuid.NewString()

	suite.mockSalesService.On("GetSaleByID", mock.Anything, saleID).
		Return(nil, fmt.Errorf("lookup failed: %w", apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/"+saleID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SaleHandlerTestSuite) TestVoidSale_ForbiddenForStaff() {
	userID := uuid.NewString()
	saleID := uuid.NewString()

	suite.mockSalesService.On("VoidSale", mock.Anything, saleID, "wrong order", userID).
		Return(fmt.Errorf("role check failed: %w", apperrors.ErrForbidden)).Once()

	body := []byte(`{"reason":"wrong order"}`)
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/sales/%s/void", saleID), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSalesService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestListSales_PassesFilter() {
	userID := uuid.NewString()

	suite.mockSalesService.On("ListSales", mock.Anything, mock.MatchedBy(func(f domain.SaleFilter) bool {
		return f.PaymentMethod == "card" && f.IncludeVoided && f.Limit == 5
	})).Return([]domain.Sale{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales?paymentMethod=card&includeVoided=true&limit=5", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSalesService.AssertExpectations(suite.T())
}

func TestSaleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}
