package dto

import (
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	Deadline     string          `json:"deadline"` // Optional YYYY-MM-DD
	Description  string          `json:"description"`
}

// UpdateGoalRequest defines the mutable goal fields; nil means unchanged.
type UpdateGoalRequest struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	Deadline     *string          `json:"deadline"`
	Description  *string          `json:"description"`
	IsCompleted  *bool            `json:"isCompleted"`
}

// ContributeGoalRequest adds an amount toward a goal's target.
type ContributeGoalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID        int64           `json:"goalID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	ProgressPct   decimal.Decimal `json:"progressPct"`
	Deadline      string          `json:"deadline,omitempty"`
	Description   string          `json:"description"`
	IsCompleted   bool            `json:"isCompleted"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToGoalResponse converts a domain.Goal to its response DTO.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	resp := GoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		ProgressPct:   g.Progress().Mul(decimal.NewFromInt(100)),
		Description:   g.Description,
		IsCompleted:   g.IsCompleted,
		CreatedAt:     g.CreatedAt,
	}
	if g.Deadline != nil {
		resp.Deadline = FormatDate(*g.Deadline)
	}
	return resp
}

// ToListGoalResponse converts a slice of goals to response DTOs.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}
