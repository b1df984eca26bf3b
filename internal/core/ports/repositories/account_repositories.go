package repositories

import (
	"context"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account and returns its generated id.
	SaveAccount(ctx context.Context, account domain.Account) (int64, error)
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)
	// UpdateAccount persists the mutable fields of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID int64) error

	// FindAccountsByIDsForUpdate locks the given accounts inside tx. Every
	// requested id must exist or the call fails with ErrNotFound.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error)
	// UpdateAccountBalancesInTx applies signed balance deltas inside tx.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[int64]decimal.Decimal) error
}
