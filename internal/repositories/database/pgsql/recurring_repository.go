package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/apperrors"
	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzas-app/finanzas_backend/internal/core/ports/repositories"
	"github.com/finanzas-app/finanzas_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRecurringRepository struct {
	BaseRepository
}

// newPgxRecurringRepository creates a new repository for recurring templates.
func newPgxRecurringRepository(pool *pgxpool.Pool) portsrepo.RecurringRepository {
	return &PgxRecurringRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.RecurringRepository = (*PgxRecurringRepository)(nil)

func toDomainRecurring(m models.RecurringTransaction, accountName, categoryName string) domain.RecurringTransaction {
	return domain.RecurringTransaction{
		RecurringID:     m.RecurringID,
		AccountID:       m.AccountID,
		CategoryID:      m.CategoryID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		Description:     m.Description,
		Frequency:       domain.Frequency(m.Frequency),
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		LastOccurrence:  m.LastOccurrence,
		NextOccurrence:  m.NextOccurrence,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		AccountName:     accountName,
		CategoryName:    categoryName,
	}
}

const recurringSelect = `
	SELECT r.id, r.account_id, r.category_id, r.amount, r.type, r.description, r.frequency,
	       r.start_date, r.end_date, r.last_occurrence, r.next_occurrence, r.is_active, r.created_at,
	       a.name, c.name
	FROM recurring_transactions r
	JOIN accounts a ON a.id = r.account_id
	LEFT JOIN categories c ON c.id = r.category_id`

func scanRecurring(row pgx.Row) (domain.RecurringTransaction, error) {
	var m models.RecurringTransaction
	var description, accountName, categoryName sql.NullString
	err := row.Scan(
		&m.RecurringID,
		&m.AccountID,
		&m.CategoryID,
		&m.Amount,
		&m.TransactionType,
		&description,
		&m.Frequency,
		&m.StartDate,
		&m.EndDate,
		&m.LastOccurrence,
		&m.NextOccurrence,
		&m.IsActive,
		&m.CreatedAt,
		&accountName,
		&categoryName,
	)
	if err != nil {
		return domain.RecurringTransaction{}, err
	}
	m.Description = description.String
	return toDomainRecurring(m, accountName.String, categoryName.String), nil
}

// SaveRecurring inserts a new template and returns its generated id.
func (r *PgxRecurringRepository) SaveRecurring(ctx context.Context, rec domain.RecurringTransaction) (int64, error) {
	query := `
		INSERT INTO recurring_transactions (account_id, category_id, amount, type, description, frequency, start_date, end_date, last_occurrence, next_occurrence, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		rec.AccountID,
		rec.CategoryID,
		rec.Amount,
		string(rec.TransactionType),
		rec.Description,
		string(rec.Frequency),
		rec.StartDate,
		rec.EndDate,
		rec.LastOccurrence,
		rec.NextOccurrence,
		rec.IsActive,
		rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, fmt.Errorf("%w: referenced account or category does not exist", apperrors.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to save recurring transaction: %w", err)
	}
	return id, nil
}

// FindRecurringByID retrieves a template by its ID.
func (r *PgxRecurringRepository) FindRecurringByID(ctx context.Context, recurringID int64) (*domain.RecurringTransaction, error) {
	query := recurringSelect + ` WHERE r.id = $1;`

	rec, err := scanRecurring(r.Pool.QueryRow(ctx, query, recurringID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: recurring transaction %d", apperrors.ErrNotFound, recurringID)
		}
		return nil, fmt.Errorf("failed to find recurring transaction %d: %w", recurringID, err)
	}
	return &rec, nil
}

// ListRecurring retrieves templates ordered by next occurrence.
func (r *PgxRecurringRepository) ListRecurring(ctx context.Context, activeOnly bool) ([]domain.RecurringTransaction, error) {
	query := recurringSelect
	if activeOnly {
		query += ` WHERE r.is_active = TRUE`
	}
	query += ` ORDER BY r.next_occurrence, r.id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}
	defer rows.Close()

	return collectRecurring(rows)
}

// FindDue returns active templates whose next occurrence is at or before now.
func (r *PgxRecurringRepository) FindDue(ctx context.Context, now time.Time) ([]domain.RecurringTransaction, error) {
	query := recurringSelect + ` WHERE r.is_active = TRUE AND r.next_occurrence <= $1 ORDER BY r.next_occurrence, r.id;`

	rows, err := r.Pool.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find due recurring transactions: %w", err)
	}
	defer rows.Close()

	return collectRecurring(rows)
}

func collectRecurring(rows pgx.Rows) ([]domain.RecurringTransaction, error) {
	var recs []domain.RecurringTransaction
	for rows.Next() {
		rec, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring row: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading recurring rows: %w", err)
	}
	return recs, nil
}

// UpdateRecurring persists the template's mutable fields.
func (r *PgxRecurringRepository) UpdateRecurring(ctx context.Context, rec domain.RecurringTransaction) error {
	query := `
		UPDATE recurring_transactions
		SET amount = $2, description = $3, frequency = $4, end_date = $5, is_active = $6
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		rec.RecurringID,
		rec.Amount,
		rec.Description,
		string(rec.Frequency),
		rec.EndDate,
		rec.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update recurring transaction %d: %w", rec.RecurringID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: recurring transaction %d", apperrors.ErrNotFound, rec.RecurringID)
	}
	return nil
}

// UpdateOccurrences advances the template's schedule after materialization.
func (r *PgxRecurringRepository) UpdateOccurrences(ctx context.Context, recurringID int64, last time.Time, next time.Time) error {
	query := `UPDATE recurring_transactions SET last_occurrence = $2, next_occurrence = $3 WHERE id = $1;`
	tag, err := r.Pool.Exec(ctx, query, recurringID, last, next)
	if err != nil {
		return fmt.Errorf("failed to advance recurring transaction %d: %w", recurringID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: recurring transaction %d", apperrors.ErrNotFound, recurringID)
	}
	return nil
}

// DeactivateRecurring stops a template from materializing further.
func (r *PgxRecurringRepository) DeactivateRecurring(ctx context.Context, recurringID int64) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE recurring_transactions SET is_active = FALSE WHERE id = $1;`, recurringID)
	if err != nil {
		return fmt.Errorf("failed to deactivate recurring transaction %d: %w", recurringID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: recurring transaction %d", apperrors.ErrNotFound, recurringID)
	}
	return nil
}
