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
	"github.com/cafeledger/cafe_ledger_app/internal/middleware"
	"github.com/cafeledger/cafe_ledger_app/internal/utils"
	"github.com/cafeledger/cafe_ledger_app/pkg/config"
)

// authService implements authentication and the password reset flow.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Ensure authService implements the portssvc.AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Authenticate verifies the credentials and stamps the last login time.
// All credential failures surface as ErrUnauthorized so callers cannot
// distinguish a wrong password from an unknown username.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Login failed: password mismatch", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}

	if !user.IsActive {
		logger.Warn("Login rejected: account deactivated", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("account is deactivated: %w", apperrors.ErrForbidden)
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		// A failed stamp must not block the login itself.
		logger.Error("Failed to stamp last login", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
	} else {
		user.LastLoginAt = &now
	}

	return user, nil
}

// IssueResetToken generates a single-use reset token for the account owning
// the given email. Only the SHA-256 digest of the token is stored; the clear
// token is returned once for delivery and cannot be recovered afterwards.
func (s *authService) IssueResetToken(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to look up user for password reset: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := time.Now().Add(s.cfg.PasswordResetWindow)
	if err := s.userRepo.SetResetToken(ctx, user.UserID, utils.HashToken(token), expiry); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Password reset token issued",
		slog.String("user_id", user.UserID),
		slog.Time("expiry", expiry),
	)
	return token, nil
}

// RedeemResetToken exchanges a valid token for a new password. The stored
// token hash is cleared on success, which makes tokens single-use.
func (s *authService) RedeemResetToken(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return apperrors.ErrInvalidToken
	}
	if err := utils.ValidatePassword(newPassword, s.cfg.MinPasswordLength); err != nil {
		return err
	}

	user, err := s.userRepo.FindUserByResetTokenHash(ctx, utils.HashToken(token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrInvalidToken
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		// Expired tokens are cleared so they cannot linger in the table.
		if clearErr := s.userRepo.ClearResetToken(ctx, user.UserID); clearErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to clear expired reset token", slog.String("error", clearErr.Error()), slog.String("user_id", user.UserID))
		}
		return apperrors.ErrExpiredToken
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	now := time.Now()
	if err := s.userRepo.UpdatePassword(ctx, user.UserID, passwordHash, now); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.userRepo.ClearResetToken(ctx, user.UserID); err != nil {
		return fmt.Errorf("failed to clear redeemed reset token: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Password reset redeemed", slog.String("user_id", user.UserID))
	return nil
}
