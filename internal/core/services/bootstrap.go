package services

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/internal/middleware"
	"github.com/cafeledger/cafe_ledger_app/pkg/config"
)

// Bootstrap prepares an empty installation: it seeds the configured default
// expense categories and, when the user table is empty, creates the first
// admin account from the bootstrap credentials. There is deliberately no
// built-in default account; an empty installation without bootstrap
// credentials stays locked until they are provided.
func Bootstrap(ctx context.Context, cfg *config.Config, container *portssvc.ServiceContainer) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	seeds := make([]dto.CreateCategoryRequest, 0, len(cfg.DefaultCategories))
	for _, name := range cfg.DefaultCategories {
		seeds = append(seeds, dto.CreateCategoryRequest{Name: name, Type: "expense"})
	}
	if err := container.Category.SeedDefaultCategories(ctx, seeds); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	count, err := container.User.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users during bootstrap: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.BootstrapAdminUsername == "" || cfg.BootstrapAdminEmail == "" || cfg.BootstrapAdminPassword == "" {
		logger.Warn("No users exist and bootstrap admin credentials are not configured; logins are impossible until BOOTSTRAP_ADMIN_USERNAME, BOOTSTRAP_ADMIN_EMAIL and BOOTSTRAP_ADMIN_PASSWORD are set")
		return nil
	}

	admin, err := container.User.RegisterUser(ctx, dto.RegisterUserRequest{
		Username: cfg.BootstrapAdminUsername,
		Email:    cfg.BootstrapAdminEmail,
		Password: cfg.BootstrapAdminPassword,
		Role:     "admin",
	}, "system")
	if err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	logger.Info("Bootstrap admin created", slog.String("user_id", admin.UserID), slog.String("username", admin.Username))
	return nil
}
