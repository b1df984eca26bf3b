package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySlice is one segment of the expense-by-category breakdown.
type CategorySlice struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Color  string          `json:"color"`
}

// MonthlyPoint is the income/expense pair for one calendar month.
type MonthlyPoint struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Label renders the point's month in the short form used by chart axes.
func (p MonthlyPoint) Label() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan")
}

// BudgetStatus summarizes active budgets against the expenses charged to them.
type BudgetStatus struct {
	TotalBudgeted    decimal.Decimal `json:"totalBudgeted"`
	Spent            decimal.Decimal `json:"spent"`
	Remaining        decimal.Decimal `json:"remaining"`
	PercentAvailable decimal.Decimal `json:"percentAvailable"`
}

// DashboardSummary is the full derived snapshot the dashboard renders.
// Every value is computed by the aggregation engine from raw records; the
// struct itself carries no behaviour.
type DashboardSummary struct {
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	CurrentIncome   decimal.Decimal `json:"currentIncome"`
	CurrentExpenses decimal.Decimal `json:"currentExpenses"`
	IncomeChange    decimal.Decimal `json:"incomeChange"`  // % vs previous month
	ExpenseChange   decimal.Decimal `json:"expenseChange"` // % vs previous month
	Savings         decimal.Decimal `json:"savings"`
	SavingsPercent  decimal.Decimal `json:"savingsPercent"`
	Budget          BudgetStatus    `json:"budget"`
	GoalsProgress   decimal.Decimal `json:"goalsProgress"` // mean % across active goals
	ActiveGoals     int             `json:"activeGoals"`
	ExpenseSlices   []CategorySlice `json:"expenseSlices"`
	MonthlySeries   []MonthlyPoint  `json:"monthlySeries"`
	RecentActivity  []Transaction   `json:"recentActivity"`
}
