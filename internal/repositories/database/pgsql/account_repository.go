package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finanzas-app/finanzas_backend/internal/apperrors"
	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	"github.com/finanzas-app/finanzas_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		AccountType:    string(d.AccountType),
		Currency:       d.Currency,
		InitialBalance: d.InitialBalance,
		CurrentBalance: d.CurrentBalance,
		Description:    d.Description,
		Color:          d.Color,
		Icon:           d.Icon,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		Currency:       m.Currency,
		InitialBalance: m.InitialBalance,
		CurrentBalance: m.CurrentBalance,
		Description:    m.Description,
		Color:          m.Color,
		Icon:           m.Icon,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

const accountColumns = `id, name, type, currency, initial_balance, current_balance, description, color, icon, is_active, created_at`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	var description, color, icon sql.NullString
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.AccountType,
		&m.Currency,
		&m.InitialBalance,
		&m.CurrentBalance,
		&description,
		&color,
		&icon,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}
	m.Description = description.String
	m.Color = color.String
	m.Icon = icon.String
	return m, nil
}

// SaveAccount inserts a new account and returns its generated id.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (name, type, currency, initial_balance, current_balance, description, color, icon, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name,
		m.AccountType,
		m.Currency,
		m.InitialBalance,
		m.CurrentBalance,
		m.Description,
		m.Color,
		m.Icon,
		m.IsActive,
		m.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("%w: account named %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return 0, fmt.Errorf("failed to save account %q: %w", m.Name, err)
	}
	return id, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}

	acc := toDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccount persists the mutable fields of an existing account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, description = $3, color = $4, icon = $5, is_active = $6
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.AccountID, m.Name, m.Description, m.Color, m.Icon, m.IsActive)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account named %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to update account %d: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, m.AccountID)
	}
	return nil
}

// DeactivateAccount marks an account inactive without touching its history.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID int64) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE accounts SET is_active = FALSE WHERE id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account %d: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// FindAccountsByIDsForUpdate locks the given account rows inside tx so
// concurrent balance writes serialize. Every requested id must exist.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ANY($1) FOR UPDATE;`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	accounts := make(map[int64]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		accounts[m.AccountID] = toDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading locked account rows: %w", err)
	}

	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, id)
		}
	}
	return accounts, nil
}

// UpdateAccountBalancesInTx applies signed balance deltas inside tx using a
// single batched round trip.
func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[int64]decimal.Decimal) error {
	if len(deltas) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for accountID, delta := range deltas {
		batch.Queue(`UPDATE accounts SET current_balance = current_balance + $2 WHERE id = $1;`, accountID, delta)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range deltas {
		tag, err := results.Exec()
		if err != nil {
			return fmt.Errorf("failed to apply balance delta: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: account vanished during balance update", apperrors.ErrNotFound)
		}
	}
	return nil
}
