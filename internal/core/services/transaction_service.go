package services

import (
	"context"
	"errors"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/apperrors"
	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/dto"
	"github.com/finanzas-app/finanzas_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountRepository
	categoryRepo    portsrepo.CategoryRepository
}

// NewTransactionService creates the transaction service.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepository,
	accountRepo portsrepo.AccountRepository,
	categoryRepo portsrepo.CategoryRepository,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the request, resolves the referenced records and
// persists the transaction together with its balance effect in one atomic
// write. The source account moves by the signed delta of the transaction
// type; a transfer additionally credits the destination with the full amount.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewAppError(400, "date must be YYYY-MM-DD", err)
	}

	txn := domain.Transaction{
		AccountID:            req.AccountID,
		CategoryID:           req.CategoryID,
		Amount:               req.Amount,
		TransactionType:      req.TransactionType,
		Description:          req.Description,
		DestinationAccountID: req.DestinationAccountID,
		Date:                 date,
		CreatedAt:            time.Now(),
	}
	if err := txn.Validate(); err != nil {
		return nil, apperrors.NewAppError(400, err.Error(), errors.Join(apperrors.ErrValidation, err))
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID); err != nil {
		return nil, err
	}
	if txn.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *txn.CategoryID); err != nil {
			return nil, err
		}
	}

	deltas := map[int64]decimal.Decimal{
		txn.AccountID: accounting.BalanceDelta(txn.TransactionType, txn.Amount),
	}
	if txn.TransactionType == domain.Transfer {
		destID, _ := txn.DestinationAccount()
		if destID == txn.AccountID {
			return nil, apperrors.NewAppError(400, "transfer source and destination must differ", apperrors.ErrValidation)
		}
		if _, err := s.accountRepo.FindAccountByID(ctx, destID); err != nil {
			return nil, err
		}
		// Rows never rely on the description suffix once written.
		txn.DestinationAccountID = &destID
		deltas[destID] = deltas[destID].Add(txn.Amount)
	}

	id, err := s.transactionRepo.SaveTransaction(ctx, txn, deltas)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", "account_id", txn.AccountID, "type", txn.TransactionType)
		return nil, err
	}
	txn.TransactionID = id

	s.LogInfo(ctx, "Transaction recorded",
		"transaction_id", id,
		"account_id", txn.AccountID,
		"type", txn.TransactionType,
		"amount", txn.Amount.String(),
	)
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx, filter)
}
