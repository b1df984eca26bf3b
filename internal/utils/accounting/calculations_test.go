package accounting_test

import (
	"testing"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/finanzas-app/finanzas_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func i64(v int64) *int64 { return &v }

func TestTotalBalance(t *testing.T) {
	tests := []struct {
		name     string
		accounts []domain.Account
		want     string
	}{
		{
			name:     "empty input yields zero",
			accounts: nil,
			want:     "0",
		},
		{
			name: "sums active accounts only",
			accounts: []domain.Account{
				{CurrentBalance: dec("1000.50"), IsActive: true},
				{CurrentBalance: dec("-250.25"), IsActive: true},
				{CurrentBalance: dec("9999"), IsActive: false},
			},
			want: "750.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.TotalBalance(tt.accounts)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestPeriodTotals_ExcludesTransfers(t *testing.T) {
	txns := []domain.Transaction{
		{TransactionType: domain.Income, Amount: dec("3500")},
		{TransactionType: domain.Expense, Amount: dec("2180")},
		{TransactionType: domain.Expense, Amount: dec("19.99")},
		{TransactionType: domain.Transfer, Amount: dec("500")},
	}

	income, expense := accounting.PeriodTotals(txns)

	assert.True(t, income.Equal(dec("3500")))
	assert.True(t, expense.Equal(dec("2199.99")))

	// income + expense must equal the sum of all non-transfer amounts.
	nonTransfer := decimal.Zero
	for _, txn := range txns {
		if txn.TransactionType != domain.Transfer {
			nonTransfer = nonTransfer.Add(txn.Amount)
		}
	}
	assert.True(t, income.Add(expense).Equal(nonTransfer))
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		want     string
	}{
		{name: "zero baseline guards to zero", current: "1234.56", previous: "0", want: "0"},
		{name: "growth", current: "150", previous: "100", want: "50"},
		{name: "decline", current: "80", previous: "100", want: "-20"},
		{name: "negative baseline still computes", current: "50", previous: "-100", want: "-150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.PercentChange(dec(tt.current), dec(tt.previous))
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestSavings(t *testing.T) {
	savings := accounting.Savings(dec("3500"), dec("2180"))
	assert.True(t, savings.Equal(dec("1320")))

	pct := accounting.SavingsPercent(savings, dec("3500"))
	assert.True(t, pct.Round(1).Equal(dec("37.7")))

	assert.True(t, accounting.SavingsPercent(dec("100"), decimal.Zero).IsZero())
}

func TestComputeBudgetStatus_ScopedByCategory(t *testing.T) {
	budgets := []domain.Budget{
		{CategoryID: i64(1), Amount: dec("1000")}, // groceries
		{CategoryID: nil, Amount: dec("200")},     // uncategorized pool
	}
	txns := []domain.Transaction{
		{TransactionType: domain.Expense, CategoryID: i64(1), Amount: dec("300")},
		{TransactionType: domain.Expense, CategoryID: i64(2), Amount: dec("9999")}, // no budget for category 2
		{TransactionType: domain.Expense, CategoryID: nil, Amount: dec("80")},
		{TransactionType: domain.Income, CategoryID: i64(1), Amount: dec("50")}, // not an expense
	}

	status := accounting.ComputeBudgetStatus(budgets, txns)

	assert.True(t, status.TotalBudgeted.Equal(dec("1200")))
	assert.True(t, status.Spent.Equal(dec("380")))
	assert.True(t, status.Remaining.Equal(dec("820")))
	assert.True(t, status.PercentAvailable.Round(2).Equal(dec("68.33")))
}

func TestComputeBudgetStatus_NoBudgets(t *testing.T) {
	status := accounting.ComputeBudgetStatus(nil, []domain.Transaction{
		{TransactionType: domain.Expense, CategoryID: i64(1), Amount: dec("300")},
	})
	assert.True(t, status.TotalBudgeted.IsZero())
	assert.True(t, status.PercentAvailable.IsZero())
}

func TestGoalsProgress(t *testing.T) {
	tests := []struct {
		name  string
		goals []domain.Goal
		want  string
	}{
		{name: "no goals", goals: nil, want: "0"},
		{
			name:  "single goal halfway",
			goals: []domain.Goal{{CurrentAmount: dec("50"), TargetAmount: dec("100")}},
			want:  "50",
		},
		{
			name: "overfunded goal clamps at 100",
			goals: []domain.Goal{
				{CurrentAmount: dec("250"), TargetAmount: dec("100")},
				{CurrentAmount: dec("0"), TargetAmount: dec("100")},
			},
			want: "50",
		},
		{
			name: "zero-target goals are ignored",
			goals: []domain.Goal{
				{CurrentAmount: dec("50"), TargetAmount: dec("100")},
				{CurrentAmount: dec("10"), TargetAmount: dec("0")},
			},
			want: "50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.GoalsProgress(tt.goals)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestExpenseByCategory(t *testing.T) {
	txns := []domain.Transaction{
		{TransactionType: domain.Expense, CategoryName: "Alimentación", CategoryColor: "#FF5733", Amount: dec("120")},
		{TransactionType: domain.Expense, CategoryName: "Alimentación", CategoryColor: "#FF5733", Amount: dec("80")},
		{TransactionType: domain.Expense, CategoryName: "Transporte", CategoryColor: "#33A8FF", Amount: dec("60")},
		{TransactionType: domain.Expense, CategoryName: "", Amount: dec("999")}, // uncategorized: excluded
		{TransactionType: domain.Income, CategoryName: "Salario", Amount: dec("3500")},
	}

	slices := accounting.ExpenseByCategory(txns)

	require.Len(t, slices, 2)
	assert.Equal(t, "Alimentación", slices[0].Name)
	assert.True(t, slices[0].Amount.Equal(dec("200")))
	assert.Equal(t, "#FF5733", slices[0].Color)
	assert.Equal(t, "Transporte", slices[1].Name)
	assert.True(t, slices[1].Amount.Equal(dec("60")))
}

func TestMonthlySeries_CrossesYearBoundary(t *testing.T) {
	today := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	txns := []domain.Transaction{
		{TransactionType: domain.Income, Amount: dec("100"), Date: time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC)},
		{TransactionType: domain.Expense, Amount: dec("40"), Date: time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{TransactionType: domain.Income, Amount: dec("250"), Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{TransactionType: domain.Expense, Amount: dec("9"), Date: time.Date(2023, time.September, 30, 0, 0, 0, 0, time.UTC)}, // outside window
	}

	series := accounting.MonthlySeries(txns, today, 6)

	require.Len(t, series, 6)
	wantMonths := []struct {
		year  int
		month time.Month
	}{
		{2023, time.October},
		{2023, time.November},
		{2023, time.December},
		{2024, time.January},
		{2024, time.February},
		{2024, time.March},
	}
	for i, w := range wantMonths {
		assert.Equal(t, w.year, series[i].Year, "position %d", i)
		assert.Equal(t, w.month, series[i].Month, "position %d", i)
	}

	assert.True(t, series[0].Income.Equal(dec("100")))
	assert.True(t, series[2].Expense.Equal(dec("40")))
	assert.True(t, series[5].Income.Equal(dec("250")))
	assert.True(t, series[1].Income.IsZero())
	assert.True(t, series[1].Expense.IsZero())
}

func TestMonthlySeries_Deterministic(t *testing.T) {
	today := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		{TransactionType: domain.Income, Amount: dec("10"), Date: today},
		{TransactionType: domain.Expense, Amount: dec("4"), Date: today},
	}

	first := accounting.MonthlySeries(txns, today, 6)
	second := accounting.MonthlySeries(txns, today, 6)
	assert.Equal(t, first, second)
}

func TestBalanceDelta(t *testing.T) {
	assert.True(t, accounting.BalanceDelta(domain.Income, dec("200")).Equal(dec("200")))
	assert.True(t, accounting.BalanceDelta(domain.Expense, dec("300")).Equal(dec("-300")))
	assert.True(t, accounting.BalanceDelta(domain.Transfer, dec("100")).Equal(dec("-100")))
}
