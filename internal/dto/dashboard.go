package dto

import (
	"strconv"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/finanzas-app/finanzas_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// Card colors for the dashboard summary tiles.
const (
	colorBalance = "#007ACC"
	colorIncome  = "#28A745"
	colorExpense = "#DC3545"
	colorSavings = "#FFC107"
	colorBudget  = "#17A2B8"
	colorGoals   = "#6F42C1"
)

// SummaryCard is one dashboard tile: a headline value with a short context
// line underneath, pre-formatted for display.
type SummaryCard struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
	Color    string `json:"color"`
}

// ChartPoint is one month on the income/expense trend chart.
type ChartPoint struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategorySliceResponse is one segment of the expense breakdown chart.
type CategorySliceResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Color  string          `json:"color"`
}

// DashboardResponse is the aggregate payload the dashboard renders: six
// summary cards plus the two chart series and recent activity.
type DashboardResponse struct {
	Cards          []SummaryCard           `json:"cards"`
	ExpenseSlices  []CategorySliceResponse `json:"expenseSlices"`
	MonthlySeries  []ChartPoint            `json:"monthlySeries"`
	RecentActivity []TransactionResponse   `json:"recentActivity"`
}

// ToDashboardResponse converts a computed summary into the display payload.
func ToDashboardResponse(sum *domain.DashboardSummary) DashboardResponse {
	cards := []SummaryCard{
		{
			Label:    "Total Balance",
			Value:    utils.FormatMoney(sum.TotalBalance),
			Subtitle: "across active accounts",
			Color:    colorBalance,
		},
		{
			Label:    "Income",
			Value:    utils.FormatMoney(sum.CurrentIncome),
			Subtitle: utils.FormatPercentDelta(sum.IncomeChange) + " vs last month",
			Color:    colorIncome,
		},
		{
			Label:    "Expenses",
			Value:    utils.FormatMoney(sum.CurrentExpenses),
			Subtitle: utils.FormatPercentDelta(sum.ExpenseChange) + " vs last month",
			Color:    colorExpense,
		},
		{
			Label:    "Savings",
			Value:    utils.FormatMoney(sum.Savings),
			Subtitle: utils.FormatPercent(sum.SavingsPercent) + " of income",
			Color:    colorSavings,
		},
		{
			Label:    "Budget Remaining",
			Value:    utils.FormatMoney(sum.Budget.Remaining),
			Subtitle: utils.FormatPercent(sum.Budget.PercentAvailable) + " available",
			Color:    colorBudget,
		},
		{
			Label:    "Goals",
			Value:    utils.FormatPercent(sum.GoalsProgress),
			Subtitle: activeGoalsSubtitle(sum.ActiveGoals),
			Color:    colorGoals,
		},
	}

	slices := make([]CategorySliceResponse, len(sum.ExpenseSlices))
	for i, s := range sum.ExpenseSlices {
		slices[i] = CategorySliceResponse{Name: s.Name, Amount: s.Amount, Color: s.Color}
	}

	series := make([]ChartPoint, len(sum.MonthlySeries))
	for i, p := range sum.MonthlySeries {
		series[i] = ChartPoint{Label: p.Label(), Income: p.Income, Expense: p.Expense}
	}

	return DashboardResponse{
		Cards:          cards,
		ExpenseSlices:  slices,
		MonthlySeries:  series,
		RecentActivity: ToListTransactionResponse(sum.RecentActivity),
	}
}

func activeGoalsSubtitle(n int) string {
	if n == 1 {
		return "1 active goal"
	}
	return strconv.Itoa(n) + " active goals"
}
