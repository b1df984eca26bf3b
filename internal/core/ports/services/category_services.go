package services

import (
	"context"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
)

// CategorySvcFacade defines operations for transaction categories.
type CategorySvcFacade interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a category by its identifier.
	GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)

	// ListCategories retrieves categories, optionally filtered by type.
	ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error)
}
