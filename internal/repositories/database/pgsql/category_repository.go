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
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		CategoryType: domain.CategoryType(m.CategoryType),
		Color:        m.Color,
		Icon:         m.Icon,
		CreatedAt:    m.CreatedAt,
	}
}

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	var icon sql.NullString
	err := row.Scan(&m.CategoryID, &m.Name, &m.CategoryType, &m.Color, &icon, &m.CreatedAt)
	if err != nil {
		return models.Category{}, err
	}
	m.Icon = icon.String
	return m, nil
}

// SaveCategory inserts a new category and returns its generated id.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (int64, error) {
	query := `
		INSERT INTO categories (name, type, color, icon, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		category.Name,
		string(category.CategoryType),
		category.Color,
		category.Icon,
		category.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("%w: category named %q already exists", apperrors.ErrDuplicate, category.Name)
		}
		return 0, fmt.Errorf("failed to save category %q: %w", category.Name, err)
	}
	return id, nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	query := `SELECT id, name, type, color, icon, created_at FROM categories WHERE id = $1;`

	m, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %d", apperrors.ErrNotFound, categoryID)
		}
		return nil, fmt.Errorf("failed to find category %d: %w", categoryID, err)
	}

	cat := toDomainCategory(m)
	return &cat, nil
}

// ListCategories retrieves categories ordered by name, optionally filtered by type.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	query := `SELECT id, name, type, color, icon, created_at FROM categories`
	args := []any{}
	if categoryType != nil {
		query += ` WHERE type = $1`
		args = append(args, string(*categoryType))
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading category rows: %w", err)
	}
	return categories, nil
}
