package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	mockBudgetRepo  *MockBudgetRepository
	mockGoalRepo    *MockGoalRepository
	service         portssvc.ReportingSvcFacade
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockBudgetRepo = new(MockBudgetRepository)
	s.mockGoalRepo = new(MockGoalRepository)
	s.service = services.NewReportingService(s.mockAccountRepo, s.mockTxnRepo, s.mockBudgetRepo, s.mockGoalRepo)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func txn(t domain.TransactionType, amount, date string, catName, catColor string) domain.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return domain.Transaction{
		Amount:          dec(amount),
		TransactionType: t,
		Date:            d,
		CategoryName:    catName,
		CategoryColor:   catColor,
	}
}

// matchWindow matches a ListTransactions filter by its start date.
func matchWindow(start time.Time) interface{} {
	return mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.StartDate != nil && f.StartDate.Equal(start) && f.Limit == 0
	})
}

func (s *ReportingServiceTestSuite) TestDashboardSummary_Snapshot() {
	ctx := context.Background()
	asOf := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	accounts := []domain.Account{
		{AccountID: 1, CurrentBalance: dec("1000"), IsActive: true},
		{AccountID: 2, CurrentBalance: dec("500"), IsActive: true},
		{AccountID: 3, CurrentBalance: dec("9999"), IsActive: false},
	}
	s.mockAccountRepo.On("ListAccounts", ctx, false).Return(accounts, nil).Once()

	foodID := int64(3)
	curTxns := []domain.Transaction{
		txn(domain.Income, "3500", "2024-03-01", "", ""),
		txn(domain.Expense, "2180", "2024-03-10", "Alimentación", "#FF5733"),
		txn(domain.Transfer, "400", "2024-03-12", "", ""),
	}
	curTxns[1].CategoryID = &foodID
	prevTxns := []domain.Transaction{
		txn(domain.Income, "2800", "2024-02-05", "", ""),
		txn(domain.Expense, "2000", "2024-02-20", "Ocio", "#33AAFF"),
	}

	marStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	febStart := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	seriesStart := time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)
	s.mockTxnRepo.On("ListTransactions", ctx, matchWindow(marStart)).Return(curTxns, nil).Once()
	s.mockTxnRepo.On("ListTransactions", ctx, matchWindow(febStart)).Return(prevTxns, nil).Once()
	s.mockTxnRepo.On("ListTransactions", ctx, matchWindow(seriesStart)).
		Return(append(append([]domain.Transaction{}, prevTxns...), curTxns...), nil).Once()
	s.mockTxnRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{Limit: 5}).
		Return(curTxns[:2], nil).Once()

	budgets := []domain.Budget{
		{BudgetID: 1, CategoryID: &foodID, Amount: dec("2500")},
	}
	s.mockBudgetRepo.On("ListBudgets", ctx, true, asOf).Return(budgets, nil).Once()

	goals := []domain.Goal{
		{GoalID: 1, TargetAmount: dec("1000"), CurrentAmount: dec("500")},
		{GoalID: 2, TargetAmount: dec("2000"), CurrentAmount: dec("3000")},
	}
	s.mockGoalRepo.On("ListGoals", ctx, true).Return(goals, nil).Once()

	sum, err := s.service.DashboardSummary(ctx, asOf)
	s.Require().NoError(err)

	s.True(sum.TotalBalance.Equal(dec("1500")), "total balance: %s", sum.TotalBalance)
	s.True(sum.CurrentIncome.Equal(dec("3500")))
	s.True(sum.CurrentExpenses.Equal(dec("2180")))
	s.True(sum.IncomeChange.Equal(dec("25")), "income change: %s", sum.IncomeChange)
	s.True(sum.ExpenseChange.Equal(dec("9")), "expense change: %s", sum.ExpenseChange)
	s.True(sum.Savings.Equal(dec("1320")))
	// 1320/3500*100
	s.True(sum.SavingsPercent.Sub(dec("37.71")).Abs().LessThan(dec("0.01")), "savings pct: %s", sum.SavingsPercent)
	s.True(sum.Budget.TotalBudgeted.Equal(dec("2500")))
	s.True(sum.Budget.Spent.Equal(dec("2180")))
	s.True(sum.Budget.Remaining.Equal(dec("320")))
	// Mean of 50% and 100% (second goal clamps at its target).
	s.True(sum.GoalsProgress.Equal(dec("75")), "goals progress: %s", sum.GoalsProgress)
	s.Equal(2, sum.ActiveGoals)

	s.Require().Len(sum.ExpenseSlices, 1)
	s.Equal("Alimentación", sum.ExpenseSlices[0].Name)

	s.Require().Len(sum.MonthlySeries, 6)
	s.Equal(time.October, sum.MonthlySeries[0].Month)
	s.Equal(time.March, sum.MonthlySeries[5].Month)
	s.True(sum.MonthlySeries[4].Income.Equal(dec("2800")))
	s.True(sum.MonthlySeries[5].Expense.Equal(dec("2180")))

	s.Len(sum.RecentActivity, 2)
	s.mockTxnRepo.AssertExpectations(s.T())
}

// Recomputing the same snapshot twice must produce identical results.
func (s *ReportingServiceTestSuite) TestDashboardSummary_Idempotent() {
	ctx := context.Background()
	asOf := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	s.mockAccountRepo.On("ListAccounts", ctx, false).Return([]domain.Account{}, nil).Twice()
	s.mockTxnRepo.On("ListTransactions", ctx, mock.Anything).Return([]domain.Transaction{}, nil)
	s.mockBudgetRepo.On("ListBudgets", ctx, true, asOf).Return([]domain.Budget{}, nil).Twice()
	s.mockGoalRepo.On("ListGoals", ctx, true).Return([]domain.Goal{}, nil).Twice()

	first, err := s.service.DashboardSummary(ctx, asOf)
	s.Require().NoError(err)
	second, err := s.service.DashboardSummary(ctx, asOf)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.True(first.TotalBalance.IsZero())
	s.True(first.IncomeChange.IsZero())
	s.True(first.SavingsPercent.IsZero())
	s.True(first.GoalsProgress.IsZero())
}

func (s *ReportingServiceTestSuite) TestExpenseByCategory_Window() {
	ctx := context.Background()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	txns := []domain.Transaction{
		txn(domain.Expense, "120", "2024-01-10", "Transporte", "#00AA00"),
		txn(domain.Expense, "260", "2024-01-12", "Alimentación", "#FF5733"),
		txn(domain.Expense, "75", "2024-01-20", "Transporte", "#00AA00"),
		txn(domain.Income, "900", "2024-01-05", "Nómina", "#0000FF"),
	}
	s.mockTxnRepo.On("ListTransactions", ctx, matchWindow(start)).Return(txns, nil).Once()

	slices, err := s.service.ExpenseByCategory(ctx, start, end)
	s.Require().NoError(err)
	s.Require().Len(slices, 2)
	s.Equal("Alimentación", slices[0].Name)
	s.True(slices[0].Amount.Equal(dec("260")))
	s.Equal("Transporte", slices[1].Name)
	s.True(slices[1].Amount.Equal(dec("195")))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
