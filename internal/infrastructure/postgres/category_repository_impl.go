package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
	"github.com/rizkyamd/todo-graph-api/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name, color, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.Name, c.Color, c.UserID)

	return row.Scan(&c.ID, &c.CreatedAt)
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID, userID int64) (*entity.Category, error) {
	c := &entity.Category{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, color, user_id, created_at
		FROM categories
		WHERE id = $1 AND user_id = $2
	`, categoryID, userID)

	if err := row.Scan(&c.ID, &c.Name, &c.Color, &c.UserID, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, color, user_id, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.UserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
