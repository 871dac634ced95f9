package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
	"github.com/rizkyamd/todo-graph-api/internal/domain/repository"
)

const todoColumns = `id, title, description, completed, priority, due_date, category_id, user_id, created_at, updated_at`

type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) Create(ctx context.Context, t *entity.Todo) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO todos (title, description, completed, priority, due_date, category_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, t.Title, t.Description, t.Completed, t.Priority, t.DueDate, t.CategoryID, t.UserID)

	return row.Scan(&t.ID, &t.CreatedAt)
}

func (r *TodoRepository) GetByID(ctx context.Context, todoID, userID int64) (*entity.Todo, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1 AND user_id = $2
	`, todoID, userID)

	return scanTodo(row)
}

// Update writes the full merged row; the caller applies partial-update
// semantics before calling.
func (r *TodoRepository) Update(ctx context.Context, t *entity.Todo) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE todos
		SET title = $1, description = $2, completed = $3, priority = $4,
		    due_date = $5, category_id = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
	`, t.Title, t.Description, t.Completed, t.Priority, t.DueDate, t.CategoryID, t.UpdatedAt, t.ID, t.UserID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, todoID, userID int64) (*entity.Todo, error) {
	row := r.pool.QueryRow(ctx, `
		DELETE FROM todos
		WHERE id = $1 AND user_id = $2
		RETURNING `+todoColumns+`
	`, todoID, userID)

	return scanTodo(row)
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID int64, skip, limit int) ([]entity.Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE user_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`, userID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]entity.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *t)
	}
	return todos, rows.Err()
}

func scanTodo(row pgx.Row) (*entity.Todo, error) {
	t := &entity.Todo{}
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.Priority,
		&t.DueDate, &t.CategoryID, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
