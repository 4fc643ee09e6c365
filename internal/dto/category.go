package dto

import (
	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=expense income"`
	Description string `json:"description"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Type:        string(c.Type),
		Description: c.Description,
	}
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToListCategoriesResponse converts domain categories to the list DTO
func ToListCategoriesResponse(cs []domain.Category) ListCategoriesResponse {
	out := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		out[i] = ToCategoryResponse(&c)
	}
	return ListCategoriesResponse{Categories: out}
}
