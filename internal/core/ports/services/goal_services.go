package services

import (
	"context"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// GoalSvcFacade defines operations for savings goals.
type GoalSvcFacade interface {
	// CreateGoal persists a new savings goal.
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error)

	// GetGoalByID retrieves a goal by its identifier.
	GetGoalByID(ctx context.Context, goalID int64) (*domain.Goal, error)

	// ListGoals retrieves goals, optionally excluding completed ones.
	ListGoals(ctx context.Context, activeOnly bool) ([]domain.Goal, error)

	// UpdateGoal merges the provided fields onto an existing goal.
	UpdateGoal(ctx context.Context, goalID int64, req dto.UpdateGoalRequest) (*domain.Goal, error)

	// Contribute adds an amount toward the goal and marks it completed once
	// the target is reached.
	Contribute(ctx context.Context, goalID int64, amount decimal.Decimal) (*domain.Goal, error)

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, goalID int64) error
}
