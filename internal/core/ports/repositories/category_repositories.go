package repositories

import (
	"context"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoryByName retrieves a category by its (unique) name.
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)

	// ListCategories retrieves all categories, optionally filtered by type.
	ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error)

	// CountExpensesForCategory returns how many expenses reference the category.
	CountExpensesForCategory(ctx context.Context, categoryID string) (int64, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category and writes an audit entry in the same scope.
	// The service guards against deleting categories that are still in use.
	DeleteCategory(ctx context.Context, categoryID string, deleterUserID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
