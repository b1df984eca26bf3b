package repositories

import (
	"context"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
)

// GoalRepository defines persistence operations for goals.
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.Goal) (int64, error)
	FindGoalByID(ctx context.Context, goalID int64) (*domain.Goal, error)
	// ListGoals returns goals; with activeOnly set, completed goals are skipped.
	ListGoals(ctx context.Context, activeOnly bool) ([]domain.Goal, error)
	// UpdateGoal persists all mutable fields of the goal in one statement.
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, goalID int64) error
}
