package services

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/utils/accounting"
)

// Dashboard window sizes.
const (
	trendMonths    = 6
	recentActivity = 5
)

type reportingService struct {
	BaseService
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
	budgetRepo      portsrepo.BudgetRepository
	goalRepo        portsrepo.GoalRepository
}

// NewReportingService creates the reporting service.
func NewReportingService(
	accountRepo portsrepo.AccountRepository,
	transactionRepo portsrepo.TransactionRepository,
	budgetRepo portsrepo.BudgetRepository,
	goalRepo portsrepo.GoalRepository,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// DashboardSummary recomputes the full snapshot from raw records. Nothing is
// cached or incrementally maintained, so the summary is always consistent
// with the store and safe to recompute any number of times.
func (s *reportingService) DashboardSummary(ctx context.Context, asOf time.Time) (*domain.DashboardSummary, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, false)
	if err != nil {
		return nil, err
	}

	curStart, curEnd := monthWindow(asOf)
	prevStart, prevEnd := monthWindow(curStart.AddDate(0, 0, -1))

	curTxns, err := s.windowTxns(ctx, curStart, curEnd)
	if err != nil {
		return nil, err
	}
	prevTxns, err := s.windowTxns(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}

	curIncome, curExpense := accounting.PeriodTotals(curTxns)
	prevIncome, prevExpense := accounting.PeriodTotals(prevTxns)
	savings := accounting.Savings(curIncome, curExpense)

	budgets, err := s.budgetRepo.ListBudgets(ctx, true, asOf)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.ListGoals(ctx, true)
	if err != nil {
		return nil, err
	}

	seriesStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(trendMonths - 1), 0)
	seriesTxns, err := s.windowTxns(ctx, seriesStart, curEnd)
	if err != nil {
		return nil, err
	}

	recent, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{Limit: recentActivity})
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalBalance:    accounting.TotalBalance(accounts),
		CurrentIncome:   curIncome,
		CurrentExpenses: curExpense,
		IncomeChange:    accounting.PercentChange(curIncome, prevIncome),
		ExpenseChange:   accounting.PercentChange(curExpense, prevExpense),
		Savings:         savings,
		SavingsPercent:  accounting.SavingsPercent(savings, curIncome),
		Budget:          accounting.ComputeBudgetStatus(budgets, curTxns),
		GoalsProgress:   accounting.GoalsProgress(goals),
		ActiveGoals:     len(goals),
		ExpenseSlices:   accounting.ExpenseByCategory(curTxns),
		MonthlySeries:   accounting.MonthlySeries(seriesTxns, asOf, trendMonths),
		RecentActivity:  recent,
	}, nil
}

func (s *reportingService) ExpenseByCategory(ctx context.Context, start, end time.Time) ([]domain.CategorySlice, error) {
	txns, err := s.windowTxns(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return accounting.ExpenseByCategory(txns), nil
}

func (s *reportingService) MonthlySeries(ctx context.Context, asOf time.Time, months int) ([]domain.MonthlyPoint, error) {
	if months <= 0 {
		months = trendMonths
	}
	start := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	_, end := monthWindow(asOf)
	txns, err := s.windowTxns(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return accounting.MonthlySeries(txns, asOf, months), nil
}

func (s *reportingService) windowTxns(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
}

// monthWindow returns the calendar month boundaries containing t.
func monthWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
