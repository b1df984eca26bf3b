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

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func toDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:      m.BudgetID,
		CategoryID:    m.CategoryID,
		Amount:        m.Amount,
		Period:        domain.BudgetPeriod(m.Period),
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		CreatedAt:     m.CreatedAt,
		CategoryName:  m.CategoryName,
		CategoryColor: m.CategoryColor,
	}
}

const budgetSelect = `
	SELECT b.id, b.category_id, b.amount, b.period, b.start_date, b.end_date, b.created_at,
	       c.name, c.color
	FROM budgets b
	LEFT JOIN categories c ON c.id = b.category_id`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	var catName, catColor sql.NullString
	err := row.Scan(
		&m.BudgetID,
		&m.CategoryID,
		&m.Amount,
		&m.Period,
		&m.StartDate,
		&m.EndDate,
		&m.CreatedAt,
		&catName,
		&catColor,
	)
	if err != nil {
		return models.Budget{}, err
	}
	m.CategoryName = catName.String
	m.CategoryColor = catColor.String
	return m, nil
}

// SaveBudget inserts a new budget and returns its generated id.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (int64, error) {
	query := `
		INSERT INTO budgets (category_id, amount, period, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		budget.CategoryID,
		budget.Amount,
		string(budget.Period),
		budget.StartDate,
		budget.EndDate,
		budget.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, fmt.Errorf("%w: referenced category does not exist", apperrors.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to save budget: %w", err)
	}
	return id, nil
}

// FindBudgetByID retrieves a budget by its ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	query := budgetSelect + ` WHERE b.id = $1;`

	m, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: budget %d", apperrors.ErrNotFound, budgetID)
		}
		return nil, fmt.Errorf("failed to find budget %d: %w", budgetID, err)
	}

	b := toDomainBudget(m)
	return &b, nil
}

// ListBudgets returns budgets ordered by start date. With activeOnly set,
// only budgets whose window has not closed before asOf are returned.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, activeOnly bool, asOf time.Time) ([]domain.Budget, error) {
	query := budgetSelect
	args := []any{}
	if activeOnly {
		query += ` WHERE b.end_date >= $1 AND b.start_date <= $1`
		args = append(args, asOf)
	}
	query += ` ORDER BY b.start_date, b.id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, toDomainBudget(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading budget rows: %w", err)
	}
	return budgets, nil
}
