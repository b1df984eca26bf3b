package repositories

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows a transaction listing. Nil fields are unset.
type TransactionFilter struct {
	AccountID       *int64
	CategoryID      *int64
	StartDate       *time.Time
	EndDate         *time.Time
	TransactionType *domain.TransactionType
	Limit           int // 0 means no limit
}

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	// SaveTransaction inserts the transaction row and applies every balance
	// delta in deltas within one database transaction. A failure anywhere
	// rolls the whole write back.
	SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[int64]decimal.Decimal) (int64, error)
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)
	// ListTransactions returns transactions matching the filter, newest first,
	// with category and account display columns joined in.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
}
