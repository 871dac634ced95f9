package repository

import (
	"context"
	"errors"

	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
)

// ErrNotFound is returned by every repository for a lookup miss, including
// ownership-scoped misses on rows owned by someone else.
var ErrNotFound = errors.New("not found")

// TodoRepository defines the interface for todo-related database operations.
// Lookups are always scoped by (todoID, userID): a todo owned by another user
// is indistinguishable from a nonexistent one.
type TodoRepository interface {
	Create(ctx context.Context, t *entity.Todo) error
	GetByID(ctx context.Context, todoID, userID int64) (*entity.Todo, error)
	Update(ctx context.Context, t *entity.Todo) error
	Delete(ctx context.Context, todoID, userID int64) (*entity.Todo, error)
	ListByUser(ctx context.Context, userID int64, skip, limit int) ([]entity.Todo, error)
}
