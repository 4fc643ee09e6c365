package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/core/services"
	"github.com/cafeledger/cafe_ledger_app/internal/utils"
	"github.com/cafeledger/cafe_ledger_app/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	cfg := &config.Config{
		MinPasswordLength:   8,
		PasswordResetWindow: 24 * time.Hour,
	}
	suite.service = services.NewAuthService(suite.mockUserRepo, cfg)
}

func (suite *AuthServiceTestSuite) hashedUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Username:     "barista1",
		Email:        "barista1@example.com",
		PasswordHash: hash,
		Role:         domain.RoleStaff,
		IsActive:     true,
	}
}

// --- Authenticate ---

func (suite *AuthServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	password := "Latte-Machine-9"
	user := suite.hashedUser(password)

	suite.mockUserRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateLastLogin", ctx, user.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Username, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.NotNil(got.LastLoginAt)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	user := suite.hashedUser("Latte-Machine-9")

	suite.mockUserRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Username, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_UnknownUserIndistinguishable() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, "ghost", "whatever-here")

	suite.Require().Error(err)
	suite.Nil(got)
	// Unknown users produce the same error as a wrong password.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_DeactivatedAccount() {
	ctx := context.Background()
	password := "Latte-Machine-9"
	user := suite.hashedUser(password)
	user.IsActive = false

	suite.mockUserRepo.On("FindUserByUsername", ctx, user.Username).Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Username, password)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Password reset flow ---

func (suite *AuthServiceTestSuite) TestIssueResetToken_StoresHashNotToken() {
	ctx := context.Background()
	user := suite.hashedUser("Latte-Machine-9")

	var storedHash string
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockUserRepo.On("SetResetToken", ctx, user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil).Once()

	token, err := suite.service.IssueResetToken(ctx, user.Email)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.NotEqual(token, storedHash)
	suite.Equal(utils.HashToken(token), storedHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRedeemResetToken_Success() {
	ctx := context.Background()
	token := "plain-reset-token"
	expiry := time.Now().Add(time.Hour)
	user := suite.hashedUser("old-password-1")
	user.ResetTokenExpiry = &expiry

	suite.mockUserRepo.On("FindUserByResetTokenHash", ctx, utils.HashToken(token)).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdatePassword", ctx, user.UserID, mock.MatchedBy(func(hash string) bool {
		return hash != "" && hash != "New-Password-42"
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockUserRepo.On("ClearResetToken", ctx, user.UserID).Return(nil).Once()

	err := suite.service.RedeemResetToken(ctx, token, "New-Password-42")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRedeemResetToken_SecondUseFails() {
	ctx := context.Background()
	token := "plain-reset-token"

	// After the first redemption the hash is cleared, so the lookup misses.
	suite.mockUserRepo.On("FindUserByResetTokenHash", ctx, utils.HashToken(token)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.RedeemResetToken(ctx, token, "New-Password-42")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRedeemResetToken_Expired() {
	ctx := context.Background()
	token := "plain-reset-token"
	expiry := time.Now().Add(-time.Minute)
	user := suite.hashedUser("old-password-1")
	user.ResetTokenExpiry = &expiry

	suite.mockUserRepo.On("FindUserByResetTokenHash", ctx, utils.HashToken(token)).Return(user, nil).Once()
	suite.mockUserRepo.On("ClearResetToken", ctx, user.UserID).Return(nil).Once()

	err := suite.service.RedeemResetToken(ctx, token, "New-Password-42")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrExpiredToken)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRedeemResetToken_WeakNewPassword() {
	ctx := context.Background()

	err := suite.service.RedeemResetToken(ctx, "plain-reset-token", "short")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByResetTokenHash", mock.Anything, mock.Anything)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
