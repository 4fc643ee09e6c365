package services

import (
	"context"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
)

// CategorySvcFacade defines operations for managing expense/income categories.
type CategorySvcFacade interface {
	// CreateCategory creates a new category. Fails with ErrDuplicate when a
	// category with the same name already exists.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)

	// GetCategoryByID retrieves a category by ID.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories, optionally filtered by type.
	ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error)

	// UpdateCategory updates a category's name or description.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error)

	// DeleteCategory removes a category. Fails with ErrInUse while expenses
	// still reference it.
	DeleteCategory(ctx context.Context, categoryID string, requestingUserID string) error

	// SeedDefaultCategories idempotently inserts the configured default set.
	SeedDefaultCategories(ctx context.Context, seeds []dto.CreateCategoryRequest) error
}
