package repository

import (
	"context"

	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, categoryID, userID int64) (*entity.Category, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Category, error)
}
