package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/apperrors"
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portsrepo "github.com/cafeledger/cafe_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/internal/middleware"
	"github.com/cafeledger/cafe_ledger_app/internal/utils"
	"github.com/cafeledger/cafe_ledger_app/pkg/config"
	"github.com/google/uuid"
)

// userService provides user account management operations.
type userService struct {
	userRepo  portsrepo.UserRepositoryFacade
	auditRepo portsrepo.AuditRepositoryFacade
	cfg       *config.Config
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, auditRepo portsrepo.AuditRepositoryFacade, cfg *config.Config) portssvc.UserSvcFacade {
	return &userService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		cfg:       cfg,
	}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// requireAdmin loads the requesting user and checks the admin role.
func (s *userService) requireAdmin(ctx context.Context, requestingUserID string) (*domain.User, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}
	if requester.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("user %s is not an admin: %w", requestingUserID, apperrors.ErrForbidden)
	}
	return requester, nil
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest, creatorUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := utils.ValidateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := utils.ValidatePassword(req.Password, s.cfg.MinPasswordLength); err != nil {
		return nil, err
	}

	role := domain.RoleStaff
	if req.Role != "" {
		role = domain.UserRole(req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if err := s.auditRepo.InsertAuditLog(ctx, domain.AuditLog{
		UserID:     &creatorUserID,
		Action:     domain.AuditCreate,
		TableName:  "users",
		RecordID:   user.UserID,
		OccurredAt: now,
	}); err != nil {
		logger.Error("Failed to audit user registration", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	return s.userRepo.CountUsers(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	// Users may edit their own email; role changes require an admin.
	if req.Role != nil {
		if _, err := s.requireAdmin(ctx, requestingUserID); err != nil {
			return nil, err
		}
	} else if userID != requestingUserID {
		if _, err := s.requireAdmin(ctx, requestingUserID); err != nil {
			return nil, err
		}
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for update: %w", err)
	}

	if req.Email != nil {
		if err := utils.ValidateEmail(*req.Email); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		user.Role = role
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.auditRepo.InsertAuditLog(ctx, domain.AuditLog{
		UserID:     &requestingUserID,
		Action:     domain.AuditUpdate,
		TableName:  "users",
		RecordID:   userID,
		OccurredAt: user.LastUpdatedAt,
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to audit user update", slog.String("error", err.Error()), slog.String("user_id", userID))
	}

	return user, nil
}

func (s *userService) ChangeRole(ctx context.Context, userID string, role domain.UserRole, requestingUserID string) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}
	roleStr := string(role)
	_, err := s.UpdateUser(ctx, userID, dto.UpdateUserRequest{Role: &roleStr}, requestingUserID)
	return err
}

func (s *userService) DeactivateUser(ctx context.Context, userID string, requestingUserID string) error {
	return s.setActive(ctx, userID, false, requestingUserID)
}

func (s *userService) ReactivateUser(ctx context.Context, userID string, requestingUserID string) error {
	return s.setActive(ctx, userID, true, requestingUserID)
}

func (s *userService) setActive(ctx context.Context, userID string, active bool, requestingUserID string) error {
	if _, err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return err
	}
	if userID == requestingUserID && !active {
		return fmt.Errorf("%w: users cannot deactivate themselves", apperrors.ErrValidation)
	}

	now := time.Now()
	if err := s.userRepo.SetUserActive(ctx, userID, active, requestingUserID, now); err != nil {
		return fmt.Errorf("failed to set user active state: %w", err)
	}

	if err := s.auditRepo.InsertAuditLog(ctx, domain.AuditLog{
		UserID:     &requestingUserID,
		Action:     domain.AuditUpdate,
		TableName:  "users",
		RecordID:   userID,
		Details:    fmt.Sprintf("is_active=%t", active),
		OccurredAt: now,
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to audit user activation change", slog.String("error", err.Error()), slog.String("user_id", userID))
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if _, err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return err
	}
	if userID == requestingUserID {
		return fmt.Errorf("%w: users cannot delete themselves", apperrors.ErrValidation)
	}

	err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
