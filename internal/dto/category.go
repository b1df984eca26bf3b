package dto

import (
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name         string              `json:"name" binding:"required"`
	CategoryType domain.CategoryType `json:"categoryType" binding:"required,oneof=income expense transfer"`
	Color        string              `json:"color" binding:"required,hexcolor"`
	Icon         string              `json:"icon"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID   int64               `json:"categoryID"`
	Name         string              `json:"name"`
	CategoryType domain.CategoryType `json:"categoryType"`
	Color        string              `json:"color"`
	Icon         string              `json:"icon"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:   cat.CategoryID,
		Name:         cat.Name,
		CategoryType: cat.CategoryType,
		Color:        cat.Color,
		Icon:         cat.Icon,
		CreatedAt:    cat.CreatedAt,
	}
}

// ToListCategoryResponse converts a slice of categories to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
