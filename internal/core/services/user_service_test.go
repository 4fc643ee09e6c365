package services_test

import (
	"context"
	"testing"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/core/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo  *MockUserRepository
	mockAuditRepo *MockAuditRepository
	service       portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	cfg := &config.Config{MinPasswordLength: 8}
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockAuditRepo, cfg)
}

// --- RegisterUser ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "barista1",
		Email:    "barista1@example.com",
		Password: "Latte-Machine-9",
	}
	creatorID := uuid.NewString()

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == req.Username &&
			user.Email == req.Email &&
			user.Role == domain.RoleStaff &&
			user.IsActive &&
			user.PasswordHash != "" &&
			user.PasswordHash != req.Password
	})).Return(nil).Once()
	suite.mockAuditRepo.On("InsertAuditLog", ctx, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == domain.AuditCreate && entry.TableName == "users"
	})).Return(nil).Once()

	created, err := suite.service.RegisterUser(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(req.Username, created.Username)
	suite.Equal(domain.RoleStaff, created.Role)
	suite.NotEmpty(created.UserID)
	suite.NotEqual(req.Password, created.PasswordHash)

	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_ExplicitRole() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "shiftlead",
		Email:    "lead@example.com",
		Password: "Espresso-Shot-7",
		Role:     "manager",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Role == domain.RoleManager
	})).Return(nil).Once()
	suite.mockAuditRepo.On("InsertAuditLog", ctx, mock.Anything).Return(nil).Once()

	created, err := suite.service.RegisterUser(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.RoleManager, created.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "barista1",
		Email:    "other@example.com",
		Password: "Latte-Machine-9",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	created, err := suite.service.RegisterUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_ShortPassword() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "barista2",
		Email:    "barista2@example.com",
		Password: "short",
	}

	created, err := suite.service.RegisterUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_UnknownRole() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "barista3",
		Email:    "barista3@example.com",
		Password: "Latte-Machine-9",
		Role:     "owner",
	}

	created, err := suite.service.RegisterUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateUser / ChangeRole ---

func (suite *UserServiceTestSuite) TestUpdateUser_SelfEmailChange() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.User{UserID: userID, Username: "barista1", Email: "old@example.com", Role: domain.RoleStaff}
	newEmail := "new@example.com"

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == newEmail && user.Role == domain.RoleStaff
	})).Return(nil).Once()
	suite.mockAuditRepo.On("InsertAuditLog", ctx, mock.Anything).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Email: &newEmail}, userID)

	suite.Require().NoError(err)
	suite.Equal(newEmail, updated.Email)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangeRole_RequiresAdmin() {
	ctx := context.Background()
	targetID := uuid.NewString()
	requesterID := uuid.NewString()
	requester := &domain.User{UserID: requesterID, Role: domain.RoleManager}

	suite.mockUserRepo.On("FindUserByID", ctx, requesterID).Return(requester, nil).Once()

	err := suite.service.ChangeRole(ctx, targetID, domain.RoleManager, requesterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

// --- Deactivate / Delete ---

func (suite *UserServiceTestSuite) TestDeactivateUser_SelfRejected() {
	ctx := context.Background()
	adminID := uuid.NewString()
	admin := &domain.User{UserID: adminID, Role: domain.RoleAdmin}

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).Return(admin, nil).Once()

	err := suite.service.DeactivateUser(ctx, adminID, adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SetUserActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeactivateUser_Success() {
	ctx := context.Background()
	adminID := uuid.NewString()
	targetID := uuid.NewString()
	admin := &domain.User{UserID: adminID, Role: domain.RoleAdmin}

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).Return(admin, nil).Once()
	suite.mockUserRepo.On("SetUserActive", ctx, targetID, false, adminID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAuditRepo.On("InsertAuditLog", ctx, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.RecordID == targetID && entry.Details == "is_active=false"
	})).Return(nil).Once()

	err := suite.service.DeactivateUser(ctx, targetID, adminID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NonAdminForbidden() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	requester := &domain.User{UserID: requesterID, Role: domain.RoleStaff}

	suite.mockUserRepo.On("FindUserByID", ctx, requesterID).Return(requester, nil).Once()

	err := suite.service.DeleteUser(ctx, uuid.NewString(), requesterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
