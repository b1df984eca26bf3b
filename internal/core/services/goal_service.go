package services

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/apperrors"
	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/shopspring/decimal"
)

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepository
}

// NewGoalService creates the goal service.
func NewGoalService(repo portsrepo.GoalRepository) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: repo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if !req.TargetAmount.IsPositive() {
		return nil, apperrors.NewAppError(400, "target amount must be positive", apperrors.ErrValidation)
	}

	goal := domain.Goal{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Description:   req.Description,
		CreatedAt:     time.Now(),
	}
	if req.Deadline != "" {
		deadline, err := dto.ParseDate(req.Deadline)
		if err != nil {
			return nil, apperrors.NewAppError(400, "deadline must be YYYY-MM-DD", err)
		}
		goal.Deadline = &deadline
	}

	id, err := s.goalRepo.SaveGoal(ctx, goal)
	if err != nil {
		s.LogError(ctx, err, "Failed to save goal", "name", req.Name)
		return nil, err
	}
	goal.GoalID = id

	s.LogInfo(ctx, "Goal created", "goal_id", id, "name", goal.Name)
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, goalID int64) (*domain.Goal, error) {
	return s.goalRepo.FindGoalByID(ctx, goalID)
}

func (s *goalService) ListGoals(ctx context.Context, activeOnly bool) ([]domain.Goal, error) {
	return s.goalRepo.ListGoals(ctx, activeOnly)
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID int64, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return nil, apperrors.NewAppError(400, "target amount must be positive", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			goal.Deadline = nil
		} else {
			deadline, err := dto.ParseDate(*req.Deadline)
			if err != nil {
				return nil, apperrors.NewAppError(400, "deadline must be YYYY-MM-DD", err)
			}
			goal.Deadline = &deadline
		}
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.IsCompleted != nil {
		goal.IsCompleted = *req.IsCompleted
	}

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal", "goal_id", goalID)
		return nil, err
	}

	s.LogInfo(ctx, "Goal updated", "goal_id", goalID)
	return goal, nil
}

// Contribute adds the amount to the goal's saved total. Reaching the target
// marks the goal completed; the total may exceed the target.
func (s *goalService) Contribute(ctx context.Context, goalID int64, amount decimal.Decimal) (*domain.Goal, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "contribution must be positive", apperrors.ErrValidation)
	}

	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	if goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.IsCompleted = true
	}

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to record contribution", "goal_id", goalID)
		return nil, err
	}

	s.LogInfo(ctx, "Goal contribution recorded",
		"goal_id", goalID,
		"amount", amount.String(),
		"completed", goal.IsCompleted,
	)
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID int64) error {
	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", "goal_id", goalID)
		return err
	}
	s.LogInfo(ctx, "Goal deleted", "goal_id", goalID)
	return nil
}
