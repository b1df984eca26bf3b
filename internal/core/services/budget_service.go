package services

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/apperrors"
	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/finanzas-app/finanzas_backend/internal/utils/accounting"
)

type budgetService struct {
	BaseService
	budgetRepo      portsrepo.BudgetRepository
	categoryRepo    portsrepo.CategoryRepository
	transactionRepo portsrepo.TransactionRepository
}

// NewBudgetService creates the budget service.
func NewBudgetService(
	budgetRepo portsrepo.BudgetRepository,
	categoryRepo portsrepo.CategoryRepository,
	transactionRepo portsrepo.TransactionRepository,
) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewAppError(400, "startDate must be YYYY-MM-DD", err)
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewAppError(400, "endDate must be YYYY-MM-DD", err)
	}
	if end.Before(start) {
		return nil, apperrors.NewAppError(400, "endDate must not precede startDate", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "budget amount must be positive", apperrors.ErrValidation)
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	budget := domain.Budget{
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Period:     req.Period,
		StartDate:  start,
		EndDate:    end,
		CreatedAt:  time.Now(),
	}

	id, err := s.budgetRepo.SaveBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to save budget")
		return nil, err
	}
	budget.BudgetID = id

	s.LogInfo(ctx, "Budget created", "budget_id", id, "period", budget.Period)
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	return s.budgetRepo.FindBudgetByID(ctx, budgetID)
}

func (s *budgetService) ListBudgets(ctx context.Context, activeOnly bool, asOf time.Time) ([]domain.Budget, error) {
	return s.budgetRepo.ListBudgets(ctx, activeOnly, asOf)
}

// BudgetStatus matches active budgets against the current month's expenses.
func (s *budgetService) BudgetStatus(ctx context.Context, asOf time.Time) (*domain.BudgetStatus, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, true, asOf)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	expense := domain.Expense
	txns, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		StartDate:       &monthStart,
		EndDate:         &monthEnd,
		TransactionType: &expense,
	})
	if err != nil {
		return nil, err
	}

	status := accounting.ComputeBudgetStatus(budgets, txns)
	return &status, nil
}
