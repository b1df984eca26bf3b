package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/finanzas-app/finanzas_backend/internal/apperrors"
	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	"github.com/finanzas-app/finanzas_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
// The account repository is used for row locking and balance updates inside
// the same database transaction.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepository) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}, accountRepo: accountRepo}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		AccountID:            m.AccountID,
		CategoryID:           m.CategoryID,
		Amount:               m.Amount,
		TransactionType:      domain.TransactionType(m.TransactionType),
		Description:          m.Description,
		DestinationAccountID: m.DestinationAccountID,
		Date:                 m.Date,
		CreatedAt:            m.CreatedAt,
		CategoryName:         m.CategoryName,
		CategoryColor:        m.CategoryColor,
		CategoryIcon:         m.CategoryIcon,
		AccountName:          m.AccountName,
	}
}

// SaveTransaction inserts the transaction row and applies every balance delta
// in one database transaction. The affected account rows are locked first so
// concurrent writes to the same accounts serialize instead of interleaving.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[int64]decimal.Decimal) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	accountIDs := make([]int64, 0, len(deltas))
	for id := range deltas {
		accountIDs = append(accountIDs, id)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO transactions (account_id, category_id, amount, type, description, destination_account_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	var id int64
	err = tx.QueryRow(ctx, query,
		txn.AccountID,
		txn.CategoryID,
		txn.Amount,
		string(txn.TransactionType),
		txn.Description,
		txn.DestinationAccountID,
		txn.Date,
		txn.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, fmt.Errorf("%w: referenced account or category does not exist", apperrors.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, deltas); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return id, nil
}

const transactionSelect = `
	SELECT t.id, t.account_id, t.category_id, t.amount, t.type, t.description, t.destination_account_id, t.date, t.created_at,
	       c.name, c.color, c.icon, a.name
	FROM transactions t
	LEFT JOIN categories c ON c.id = t.category_id
	JOIN accounts a ON a.id = t.account_id`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var description sql.NullString
	var catName, catColor, catIcon sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.CategoryID,
		&m.Amount,
		&m.TransactionType,
		&description,
		&m.DestinationAccountID,
		&m.Date,
		&m.CreatedAt,
		&catName,
		&catColor,
		&catIcon,
		&m.AccountName,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	m.Description = description.String
	m.CategoryName = catName.String
	m.CategoryColor = catColor.String
	m.CategoryIcon = catIcon.String
	return m, nil
}

// FindTransactionByID retrieves a transaction with display columns joined in.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %d", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}

	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactions returns transactions matching the filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.AccountID != nil {
		conditions = append(conditions, "t.account_id = "+arg(*filter.AccountID))
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, "t.category_id = "+arg(*filter.CategoryID))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "t.date >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "t.date <= "+arg(*filter.EndDate))
	}
	if filter.TransactionType != nil {
		conditions = append(conditions, "t.type = "+arg(string(*filter.TransactionType)))
	}

	query := transactionSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY t.date DESC, t.id DESC"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return txns, nil
}
