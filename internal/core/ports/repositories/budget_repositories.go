package repositories

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
)

// BudgetRepository defines persistence operations for budgets.
type BudgetRepository interface {
	SaveBudget(ctx context.Context, budget domain.Budget) (int64, error)
	FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error)
	// ListBudgets returns budgets ordered by start date. With activeOnly set,
	// only budgets whose end date has not passed asOf are returned.
	ListBudgets(ctx context.Context, activeOnly bool, asOf time.Time) ([]domain.Budget, error)
}
