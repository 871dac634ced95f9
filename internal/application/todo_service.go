package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
	repo "github.com/rizkyamd/todo-graph-api/internal/domain/repository"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidPriority = errors.New("priority must be one of: low, medium, high")
)

// TodoService manages the todo lifecycle. Ownership scoping happens at the
// repository level, so a foreign todo surfaces as ErrNotFound here.
type TodoService struct {
	Repo   repo.TodoRepository
	Sync   *SyncCoordinator
	Logger *logrus.Logger
}

func NewTodoService(r repo.TodoRepository, sync *SyncCoordinator, logger *logrus.Logger) *TodoService {
	return &TodoService{Repo: r, Sync: sync, Logger: logger}
}

// CreateTodoInput carries the user-supplied fields for a new todo.
type CreateTodoInput struct {
	Title       string
	Description *string
	Priority    string
	DueDate     *time.Time
	CategoryID  *int64
}

func (s *TodoService) Create(ctx context.Context, userID int64, in CreateTodoInput) (*entity.Todo, error) {
	if in.Priority == "" {
		in.Priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(in.Priority) {
		return nil, ErrInvalidPriority
	}
	t := &entity.Todo{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		CategoryID:  in.CategoryID,
		UserID:      userID,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.Sync.TodoCreated(ctx, t)
	return t, nil
}

func (s *TodoService) Get(ctx context.Context, todoID, userID int64) (*entity.Todo, error) {
	t, err := s.Repo.GetByID(ctx, todoID, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return t, nil
}

// List returns the user's todos in insertion order, paginated by offset/limit.
func (s *TodoService) List(ctx context.Context, userID int64, skip, limit int) ([]entity.Todo, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.Repo.ListByUser(ctx, userID, skip, limit)
}

// Patch carries one nullable field of a partial update. Set reports whether
// the field was present in the payload; a present field with a nil Value
// clears the column.
type Patch[T any] struct {
	Set   bool
	Value *T
}

// UpdateTodoInput carries a partial update. Non-nullable fields are applied
// when non-nil; nullable fields distinguish "absent" from an explicit null
// via Patch.
type UpdateTodoInput struct {
	Title       *string
	Completed   *bool
	Priority    *string
	Description Patch[string]
	DueDate     Patch[time.Time]
	CategoryID  Patch[int64]
}

// Update applies only the fields present in the input; everything else keeps
// its prior value. An explicit null clears the column. Establishing a new
// category link propagates the BELONGS_TO edge; clearing the category does
// not remove the edge (deletes are never propagated to the mirror).
func (s *TodoService) Update(ctx context.Context, todoID, userID int64, in UpdateTodoInput) (*entity.Todo, error) {
	t, err := s.Repo.GetByID(ctx, todoID, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return nil, ErrInvalidPriority
		}
		t.Priority = *in.Priority
	}
	if in.Description.Set {
		t.Description = in.Description.Value
	}
	if in.DueDate.Set {
		t.DueDate = in.DueDate.Value
	}
	linked := false
	if in.CategoryID.Set {
		if in.CategoryID.Value != nil {
			linked = t.CategoryID == nil || *t.CategoryID != *in.CategoryID.Value
		}
		t.CategoryID = in.CategoryID.Value
	}
	now := time.Now()
	t.UpdatedAt = &now

	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, mapNotFound(err)
	}

	// Keep the mirror's Todo node current and derive the new edge.
	s.Sync.TodoUpdated(ctx, t)
	if linked {
		s.Sync.TodoLinked(ctx, t.ID, *t.CategoryID)
	}
	return t, nil
}

// Delete removes the todo relationally. The graph mirror is intentionally
// left untouched; stale nodes remain until an out-of-band reconciliation.
func (s *TodoService) Delete(ctx context.Context, todoID, userID int64) (*entity.Todo, error) {
	t, err := s.Repo.Delete(ctx, todoID, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return t, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
