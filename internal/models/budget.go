package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget mirrors the budgets table.
type Budget struct {
	BudgetID   int64           `db:"id"`
	CategoryID *int64          `db:"category_id"` // Nullable
	Amount     decimal.Decimal `db:"amount"`
	Period     string          `db:"period"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    time.Time       `db:"end_date"`
	CreatedAt  time.Time       `db:"created_at"`

	CategoryName  string `db:"category_name"`
	CategoryColor string `db:"category_color"`
}
