package services

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
)

// ReportingSvcFacade derives read-only aggregates from raw records. Reports
// never mutate state; recomputing one is always safe.
type ReportingSvcFacade interface {
	// DashboardSummary computes the full dashboard snapshot as of the given
	// reference date.
	DashboardSummary(ctx context.Context, asOf time.Time) (*domain.DashboardSummary, error)

	// ExpenseByCategory sums expenses per category over [start, end].
	ExpenseByCategory(ctx context.Context, start, end time.Time) ([]domain.CategorySlice, error)

	// MonthlySeries returns per-month income/expense totals for the months
	// window ending at the asOf month, oldest first.
	MonthlySeries(ctx context.Context, asOf time.Time, months int) ([]domain.MonthlyPoint, error)
}
