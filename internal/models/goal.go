package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal mirrors the goals table.
type Goal struct {
	GoalID        int64           `db:"id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Deadline      *time.Time      `db:"deadline"`    // Nullable
	Description   string          `db:"description"` // Nullable
	IsCompleted   bool            `db:"is_completed"`
	CreatedAt     time.Time       `db:"created_at"`
}
