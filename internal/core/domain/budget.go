package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the nominal cadence of a budget. The effective window is
// always [StartDate, EndDate]; the period is a display hint.
type BudgetPeriod string

const (
	Monthly   BudgetPeriod = "monthly"
	Quarterly BudgetPeriod = "quarterly"
	Yearly    BudgetPeriod = "yearly"
	Custom    BudgetPeriod = "custom"
)

// Budget is a spending ceiling for a category over a period.
// A nil CategoryID means the budget covers uncategorized spending.
type Budget struct {
	BudgetID   int64           `json:"budgetID"`
	CategoryID *int64          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"` // Ceiling
	Period     BudgetPeriod    `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	CreatedAt  time.Time       `json:"createdAt"`

	// Joined read-side fields.
	CategoryName  string `json:"categoryName,omitempty"`
	CategoryColor string `json:"categoryColor,omitempty"`
}

// IsActive reports whether the budget window has not yet closed on the given day.
func (b Budget) IsActive(today time.Time) bool {
	return !b.EndDate.Before(today.Truncate(24 * time.Hour))
}
