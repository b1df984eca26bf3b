package services

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/apperrors"
	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/finanzas-app/finanzas_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type recurringService struct {
	BaseService
	recurringRepo   portsrepo.RecurringRepository
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
}

// NewRecurringService creates the recurring transaction service.
func NewRecurringService(
	recurringRepo portsrepo.RecurringRepository,
	transactionRepo portsrepo.TransactionRepository,
	accountRepo portsrepo.AccountRepository,
) portssvc.RecurringSvcFacade {
	return &recurringService{
		recurringRepo:   recurringRepo,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest) (*domain.RecurringTransaction, error) {
	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewAppError(400, "startDate must be YYYY-MM-DD", err)
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		return nil, err
	}

	rec := domain.RecurringTransaction{
		AccountID:       req.AccountID,
		CategoryID:      req.CategoryID,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Description:     req.Description,
		Frequency:       req.Frequency,
		StartDate:       start,
		NextOccurrence:  start,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	if req.EndDate != "" {
		end, err := dto.ParseDate(req.EndDate)
		if err != nil {
			return nil, apperrors.NewAppError(400, "endDate must be YYYY-MM-DD", err)
		}
		if end.Before(start) {
			return nil, apperrors.NewAppError(400, "endDate must not precede startDate", apperrors.ErrValidation)
		}
		rec.EndDate = &end
	}

	id, err := s.recurringRepo.SaveRecurring(ctx, rec)
	if err != nil {
		s.LogError(ctx, err, "Failed to save recurring transaction")
		return nil, err
	}
	rec.RecurringID = id

	s.LogInfo(ctx, "Recurring transaction created", "recurring_id", id, "frequency", rec.Frequency)
	return &rec, nil
}

func (s *recurringService) GetRecurringByID(ctx context.Context, recurringID int64) (*domain.RecurringTransaction, error) {
	return s.recurringRepo.FindRecurringByID(ctx, recurringID)
}

func (s *recurringService) ListRecurring(ctx context.Context, activeOnly bool) ([]domain.RecurringTransaction, error) {
	return s.recurringRepo.ListRecurring(ctx, activeOnly)
}

func (s *recurringService) UpdateRecurring(ctx context.Context, recurringID int64, req dto.UpdateRecurringRequest) (*domain.RecurringTransaction, error) {
	rec, err := s.recurringRepo.FindRecurringByID(ctx, recurringID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.NewAppError(400, "amount must be positive", apperrors.ErrValidation)
		}
		rec.Amount = *req.Amount
	}
	if req.Description != nil {
		rec.Description = *req.Description
	}
	if req.Frequency != nil {
		rec.Frequency = *req.Frequency
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			rec.EndDate = nil
		} else {
			end, err := dto.ParseDate(*req.EndDate)
			if err != nil {
				return nil, apperrors.NewAppError(400, "endDate must be YYYY-MM-DD", err)
			}
			if end.Before(rec.StartDate) {
				return nil, apperrors.NewAppError(400, "endDate must not precede startDate", apperrors.ErrValidation)
			}
			rec.EndDate = &end
		}
	}
	if req.IsActive != nil {
		rec.IsActive = *req.IsActive
	}

	if err := s.recurringRepo.UpdateRecurring(ctx, *rec); err != nil {
		s.LogError(ctx, err, "Failed to update recurring transaction", "recurring_id", recurringID)
		return nil, err
	}

	s.LogInfo(ctx, "Recurring transaction updated", "recurring_id", recurringID)
	return rec, nil
}

func (s *recurringService) DeactivateRecurring(ctx context.Context, recurringID int64) error {
	if err := s.recurringRepo.DeactivateRecurring(ctx, recurringID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate recurring transaction", "recurring_id", recurringID)
		return err
	}
	s.LogInfo(ctx, "Recurring transaction deactivated", "recurring_id", recurringID)
	return nil
}

// ProcessDue materializes every pending occurrence of every due template. A
// template that lags behind (say the scheduler was down for a week on a daily
// template) catches up in one run, one transaction per missed occurrence.
// Failures on one template are logged and skipped so the rest still process.
func (s *recurringService) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.recurringRepo.FindDue(ctx, now)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, rec := range due {
		for !rec.NextOccurrence.After(now) {
			if rec.Expired(rec.NextOccurrence) {
				if err := s.recurringRepo.DeactivateRecurring(ctx, rec.RecurringID); err != nil {
					s.LogError(ctx, err, "Failed to deactivate expired template", "recurring_id", rec.RecurringID)
				}
				break
			}

			txn := domain.Transaction{
				AccountID:       rec.AccountID,
				CategoryID:      rec.CategoryID,
				Amount:          rec.Amount,
				TransactionType: rec.TransactionType,
				Description:     rec.Description,
				Date:            rec.NextOccurrence,
				CreatedAt:       time.Now(),
			}
			deltas := map[int64]decimal.Decimal{
				txn.AccountID: accounting.BalanceDelta(txn.TransactionType, txn.Amount),
			}
			if _, err := s.transactionRepo.SaveTransaction(ctx, txn, deltas); err != nil {
				s.LogError(ctx, err, "Failed to materialize recurring transaction", "recurring_id", rec.RecurringID)
				break
			}
			created++

			last := rec.NextOccurrence
			rec.LastOccurrence = &last
			rec.NextOccurrence = rec.NextAfter(last)
			if err := s.recurringRepo.UpdateOccurrences(ctx, rec.RecurringID, last, rec.NextOccurrence); err != nil {
				s.LogError(ctx, err, "Failed to advance recurring schedule", "recurring_id", rec.RecurringID)
				break
			}
		}
	}

	if created > 0 {
		s.LogInfo(ctx, "Recurring transactions processed", "created", created)
	}
	return created, nil
}
