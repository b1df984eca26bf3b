package repositories

import (
	"context"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) (int64, error)
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	// ListCategories returns all categories, optionally restricted to one type.
	ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error)
}
