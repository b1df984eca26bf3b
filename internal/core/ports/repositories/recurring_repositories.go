package repositories

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
)

// RecurringRepository defines persistence operations for recurring
// transaction templates.
type RecurringRepository interface {
	SaveRecurring(ctx context.Context, rec domain.RecurringTransaction) (int64, error)
	FindRecurringByID(ctx context.Context, recurringID int64) (*domain.RecurringTransaction, error)
	ListRecurring(ctx context.Context, activeOnly bool) ([]domain.RecurringTransaction, error)
	// FindDue returns active templates whose next occurrence is at or before now.
	FindDue(ctx context.Context, now time.Time) ([]domain.RecurringTransaction, error)
	// UpdateRecurring persists the template's mutable fields.
	UpdateRecurring(ctx context.Context, rec domain.RecurringTransaction) error
	// UpdateOccurrences advances last/next occurrence after materialization.
	UpdateOccurrences(ctx context.Context, recurringID int64, last time.Time, next time.Time) error
	DeactivateRecurring(ctx context.Context, recurringID int64) error
}
