package services

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
)

// RecurringSvcFacade defines operations for recurring transaction templates.
type RecurringSvcFacade interface {
	// CreateRecurring persists a new template; its first occurrence is the
	// start date.
	CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest) (*domain.RecurringTransaction, error)

	// GetRecurringByID retrieves a template by its identifier.
	GetRecurringByID(ctx context.Context, recurringID int64) (*domain.RecurringTransaction, error)

	// ListRecurring retrieves templates, optionally only active ones.
	ListRecurring(ctx context.Context, activeOnly bool) ([]domain.RecurringTransaction, error)

	// UpdateRecurring merges the provided fields onto a stored template.
	UpdateRecurring(ctx context.Context, recurringID int64, req dto.UpdateRecurringRequest) (*domain.RecurringTransaction, error)

	// DeactivateRecurring stops a template from materializing further.
	DeactivateRecurring(ctx context.Context, recurringID int64) error

	// ProcessDue materializes every occurrence due at or before now and
	// advances each template's schedule. Returns the number of transactions
	// created.
	ProcessDue(ctx context.Context, now time.Time) (int, error)
}
