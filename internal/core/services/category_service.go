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
	"github.com/google/uuid"
)

// categoryService provides expense/income category management.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	auditRepo    portsrepo.AuditRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, auditRepo portsrepo.AuditRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
	}
}

// Ensure categoryService implements the portssvc.CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}
	categoryType := domain.CategoryType(req.Type)
	if !categoryType.IsValid() {
		return nil, fmt.Errorf("%w: unknown category type %q", apperrors.ErrValidation, req.Type)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Type:        categoryType,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if err := s.auditRepo.InsertAuditLog(ctx, domain.AuditLog{
		UserID:     &creatorUserID,
		Action:     domain.AuditCreate,
		TableName:  "categories",
		RecordID:   category.CategoryID,
		OccurredAt: now,
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to audit category creation", slog.String("error", err.Error()), slog.String("category_id", category.CategoryID))
	}

	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	if categoryType != nil && !categoryType.IsValid() {
		return nil, fmt.Errorf("%w: unknown category type %q", apperrors.ErrValidation, *categoryType)
	}
	categories, err := s.categoryRepo.ListCategories(ctx, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category for update: %w", err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: category name cannot be empty", apperrors.ErrValidation)
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = requestingUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	if err := s.auditRepo.InsertAuditLog(ctx, domain.AuditLog{
		UserID:     &requestingUserID,
		Action:     domain.AuditUpdate,
		TableName:  "categories",
		RecordID:   categoryID,
		OccurredAt: category.LastUpdatedAt,
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to audit category update", slog.String("error", err.Error()), slog.String("category_id", categoryID))
	}

	return category, nil
}

// DeleteCategory refuses to delete a category that expenses still reference.
// Only admins may delete.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, requestingUserID string) error {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return fmt.Errorf("failed to load requesting user: %w", err)
	}
	if requester.Role != domain.RoleAdmin {
		return fmt.Errorf("deleting categories requires the admin role: %w", apperrors.ErrForbidden)
	}

	count, err := s.categoryRepo.CountExpensesForCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("category has %d expenses recorded against it: %w", count, apperrors.ErrInUse)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID, requestingUserID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if err := s.auditRepo.InsertAuditLog(ctx, domain.AuditLog{
		UserID:     &requestingUserID,
		Action:     domain.AuditDelete,
		TableName:  "categories",
		RecordID:   categoryID,
		OccurredAt: time.Now(),
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to audit category deletion", slog.String("error", err.Error()), slog.String("category_id", categoryID))
	}
	return nil
}

// SeedDefaultCategories inserts the configured default set, skipping names
// that already exist. Used on first run and safe to repeat.
func (s *categoryService) SeedDefaultCategories(ctx context.Context, seeds []dto.CreateCategoryRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	for _, seed := range seeds {
		_, err := s.categoryRepo.FindCategoryByName(ctx, seed.Name)
		if err == nil {
			continue // already present
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check for existing category %q: %w", seed.Name, err)
		}

		if _, err := s.CreateCategory(ctx, seed, "system"); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue // raced with another seeder
			}
			return fmt.Errorf("failed to seed category %q: %w", seed.Name, err)
		}
		logger.Info("Seeded default category", slog.String("name", seed.Name))
	}
	return nil
}
