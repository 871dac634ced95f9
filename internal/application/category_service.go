package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
	repo "github.com/rizkyamd/todo-graph-api/internal/domain/repository"
)

// CategoryService manages categories. Categories are never deleted through
// this API, so the mirror only ever gains Category nodes.
type CategoryService struct {
	Repo   repo.CategoryRepository
	Sync   *SyncCoordinator
	Logger *logrus.Logger
}

func NewCategoryService(r repo.CategoryRepository, sync *SyncCoordinator, logger *logrus.Logger) *CategoryService {
	return &CategoryService{Repo: r, Sync: sync, Logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, userID int64, name, color string) (*entity.Category, error) {
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	c := &entity.Category{
		Name:   name,
		Color:  color,
		UserID: userID,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Sync.CategoryCreated(ctx, c)
	return c, nil
}

// Get returns one of the user's categories. A category owned by another user
// is indistinguishable from a nonexistent one.
func (s *CategoryService) Get(ctx context.Context, categoryID, userID int64) (*entity.Category, error) {
	c, err := s.Repo.GetByID(ctx, categoryID, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

// List returns all of the user's categories, unpaginated.
func (s *CategoryService) List(ctx context.Context, userID int64) ([]entity.Category, error) {
	return s.Repo.ListByUser(ctx, userID)
}
