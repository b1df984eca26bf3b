package services

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
)

// BudgetSvcFacade defines operations for spending budgets.
type BudgetSvcFacade interface {
	// CreateBudget persists a new budget window.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// GetBudgetByID retrieves a budget by its identifier.
	GetBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error)

	// ListBudgets retrieves budgets; when activeOnly is set, only those whose
	// window covers asOf are returned.
	ListBudgets(ctx context.Context, activeOnly bool, asOf time.Time) ([]domain.Budget, error)

	// BudgetStatus computes budgeted vs spent for the active budgets as of now.
	BudgetStatus(ctx context.Context, asOf time.Time) (*domain.BudgetStatus, error)
}
