package services

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(repo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		Name:         req.Name,
		CategoryType: req.CategoryType,
		Color:        req.Color,
		Icon:         req.Icon,
		CreatedAt:    time.Now(),
	}

	id, err := s.categoryRepo.SaveCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to save category", "name", req.Name)
		return nil, err
	}
	category.CategoryID = id

	s.LogInfo(ctx, "Category created", "category_id", id, "name", category.Name)
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, categoryType)
}
