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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGoalRepository struct {
	BaseRepository
}

// newPgxGoalRepository creates a new repository for goal data.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

func toDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:        m.GoalID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline,
		Description:   m.Description,
		IsCompleted:   m.IsCompleted,
		CreatedAt:     m.CreatedAt,
	}
}

const goalColumns = `id, name, target_amount, current_amount, deadline, description, is_completed, created_at`

func scanGoal(row pgx.Row) (models.Goal, error) {
	var m models.Goal
	var description sql.NullString
	err := row.Scan(
		&m.GoalID,
		&m.Name,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.Deadline,
		&description,
		&m.IsCompleted,
		&m.CreatedAt,
	)
	if err != nil {
		return models.Goal{}, err
	}
	m.Description = description.String
	return m, nil
}

// SaveGoal inserts a new goal and returns its generated id.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) (int64, error) {
	query := `
		INSERT INTO goals (name, target_amount, current_amount, deadline, description, is_completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Deadline,
		goal.Description,
		goal.IsCompleted,
		goal.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save goal %q: %w", goal.Name, err)
	}
	return id, nil
}

// FindGoalByID retrieves a goal by its ID.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID int64) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1;`

	m, err := scanGoal(r.Pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: goal %d", apperrors.ErrNotFound, goalID)
		}
		return nil, fmt.Errorf("failed to find goal %d: %w", goalID, err)
	}

	g := toDomainGoal(m)
	return &g, nil
}

// ListGoals retrieves goals ordered by creation; activeOnly skips completed ones.
func (r *PgxGoalRepository) ListGoals(ctx context.Context, activeOnly bool) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals`
	if activeOnly {
		query += ` WHERE is_completed = FALSE`
	}
	query += ` ORDER BY created_at, id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, toDomainGoal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading goal rows: %w", err)
	}
	return goals, nil
}

// UpdateGoal persists all mutable fields of the goal in one statement.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	query := `
		UPDATE goals
		SET name = $2, target_amount = $3, current_amount = $4, deadline = $5, description = $6, is_completed = $7
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		goal.GoalID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Deadline,
		goal.Description,
		goal.IsCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %d: %w", goal.GoalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: goal %d", apperrors.ErrNotFound, goal.GoalID)
	}
	return nil
}

// DeleteGoal removes a goal.
func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %d: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: goal %d", apperrors.ErrNotFound, goalID)
	}
	return nil
}
