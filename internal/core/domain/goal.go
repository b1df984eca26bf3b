package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target with accumulated progress.
type Goal struct {
	GoalID        int64           `json:"goalID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline"` // Nullable
	Description   string          `json:"description"`
	IsCompleted   bool            `json:"isCompleted"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Progress returns the fraction of the target reached, clamped to [0, 1].
// A goal without a positive target has no meaningful progress and reports 0.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	p := g.CurrentAmount.Div(g.TargetAmount)
	one := decimal.NewFromInt(1)
	if p.GreaterThan(one) {
		return one
	}
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}
