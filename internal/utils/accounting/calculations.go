// Package accounting holds the pure aggregation functions that turn raw
// account/transaction/budget/goal records into the derived metrics shown on
// the dashboard and reports. Every function is deterministic and side-effect
// free: identical inputs always produce identical outputs, and no function
// here touches the store or the clock.
package accounting

import (
	"sort"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// TotalBalance sums the current balance of every active account.
// Inactive accounts are excluded; an empty input yields zero.
func TotalBalance(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if a.IsActive {
			total = total.Add(a.CurrentBalance)
		}
	}
	return total
}

// PeriodTotals partitions an already date-filtered transaction list by type
// and returns the income and expense sums. Transfers count toward neither.
func PeriodTotals(txns []domain.Transaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, t := range txns {
		switch t.TransactionType {
		case domain.Income:
			income = income.Add(t.Amount)
		case domain.Expense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}

// PercentChange returns (current-previous)/previous*100. A zero previous
// value yields 0 rather than an error: "no baseline" deliberately reads as
// "no change". A negative previous value is a real baseline and produces the
// computed ratio.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(oneHundred)
}

// Savings is the surplus of income over expenses for a period.
func Savings(income, expense decimal.Decimal) decimal.Decimal {
	return income.Sub(expense)
}

// SavingsPercent expresses savings as a share of income; 0 when there is no
// positive income to relate it to.
func SavingsPercent(savings, income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return savings.Div(income).Mul(oneHundred)
}

// ComputeBudgetStatus matches each active budget against the expense
// transactions charged to its own category. Budgets with a nil category
// absorb uncategorized expenses. Expenses in categories without a budget do
// not reduce any budget. Transactions are expected to be pre-filtered to the
// reporting window.
func ComputeBudgetStatus(budgets []domain.Budget, txns []domain.Transaction) domain.BudgetStatus {
	totalBudgeted := decimal.Zero
	budgeted := make(map[int64]bool, len(budgets))
	uncategorizedBudget := false
	for _, b := range budgets {
		totalBudgeted = totalBudgeted.Add(b.Amount)
		if b.CategoryID != nil {
			budgeted[*b.CategoryID] = true
		} else {
			uncategorizedBudget = true
		}
	}

	spent := decimal.Zero
	for _, t := range txns {
		if t.TransactionType != domain.Expense {
			continue
		}
		if t.CategoryID != nil {
			if budgeted[*t.CategoryID] {
				spent = spent.Add(t.Amount)
			}
		} else if uncategorizedBudget {
			spent = spent.Add(t.Amount)
		}
	}

	remaining := totalBudgeted.Sub(spent)
	percent := decimal.Zero
	if totalBudgeted.IsPositive() {
		percent = remaining.Div(totalBudgeted).Mul(oneHundred)
	}
	return domain.BudgetStatus{
		TotalBudgeted:    totalBudgeted,
		Spent:            spent,
		Remaining:        remaining,
		PercentAvailable: percent,
	}
}

// GoalsProgress returns the mean completion percentage across goals with a
// positive target, each goal clamped at 100%. No qualifying goals means 0.
func GoalsProgress(goals []domain.Goal) decimal.Decimal {
	sum := decimal.Zero
	counted := 0
	for _, g := range goals {
		if !g.TargetAmount.IsPositive() {
			continue
		}
		sum = sum.Add(g.Progress())
		counted++
	}
	if counted == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(counted))).Mul(oneHundred)
}

// ExpenseByCategory buckets expense-type transactions by category name,
// keeping the category's display color. Transactions without a category are
// excluded rather than bucketed into a synthetic "uncategorized" slice.
// Slices are ordered by descending amount (name as tiebreak) so repeated runs
// over the same snapshot are bit-identical.
func ExpenseByCategory(txns []domain.Transaction) []domain.CategorySlice {
	type bucket struct {
		amount decimal.Decimal
		color  string
	}
	buckets := make(map[string]*bucket)
	for _, t := range txns {
		if t.TransactionType != domain.Expense || t.CategoryName == "" {
			continue
		}
		b, ok := buckets[t.CategoryName]
		if !ok {
			color := t.CategoryColor
			if color == "" {
				color = "#FF5733"
			}
			b = &bucket{amount: decimal.Zero, color: color}
			buckets[t.CategoryName] = b
		}
		b.amount = b.amount.Add(t.Amount)
	}

	slices := make([]domain.CategorySlice, 0, len(buckets))
	for name, b := range buckets {
		slices = append(slices, domain.CategorySlice{Name: name, Amount: b.amount, Color: b.color})
	}
	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].Amount.Equal(slices[j].Amount) {
			return slices[i].Amount.GreaterThan(slices[j].Amount)
		}
		return slices[i].Name < slices[j].Name
	})
	return slices
}

// MonthlySeries buckets transactions into the trailing n calendar months
// ending with today's month, oldest first. Month windows follow calendar
// boundaries (first of the month through the last day of the month, with
// December rolling into the next year), never fixed 30-day spans. Months with
// no transactions appear with zero sums so chart axes stay aligned.
func MonthlySeries(txns []domain.Transaction, today time.Time, n int) []domain.MonthlyPoint {
	if n <= 0 {
		return []domain.MonthlyPoint{}
	}

	series := make([]domain.MonthlyPoint, n)
	index := make(map[int]int, n) // year*100+month -> position
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		m := first.AddDate(0, i, 0)
		series[i] = domain.MonthlyPoint{
			Year:    m.Year(),
			Month:   m.Month(),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		index[m.Year()*100+int(m.Month())] = i
	}

	for _, t := range txns {
		pos, ok := index[t.Date.Year()*100+int(t.Date.Month())]
		if !ok {
			continue
		}
		switch t.TransactionType {
		case domain.Income:
			series[pos].Income = series[pos].Income.Add(t.Amount)
		case domain.Expense:
			series[pos].Expense = series[pos].Expense.Add(t.Amount)
		}
	}
	return series
}

// BalanceDelta is the signed effect of a transaction on its owning account:
// +amount for income, -amount for expense and for the source side of a
// transfer. The destination side of a transfer gains the full amount.
func BalanceDelta(txnType domain.TransactionType, amount decimal.Decimal) decimal.Decimal {
	if txnType == domain.Income {
		return amount
	}
	return amount.Neg()
}
