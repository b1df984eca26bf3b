package pgsql

import (
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository over the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	budgetRepo := newPgxBudgetRepository(dbPool)
	goalRepo := newPgxGoalRepository(dbPool)
	recurringRepo := newPgxRecurringRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		CategoryRepo:    categoryRepo,
		TransactionRepo: transactionRepo,
		BudgetRepo:      budgetRepo,
		GoalRepo:        goalRepo,
		RecurringRepo:   recurringRepo,
	}
}
