package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
	"github.com/rizkyamd/todo-graph-api/internal/domain/repository"
)

// SyncCoordinator propagates relational writes into the graph mirror. It is
// invoked strictly after the relational commit and is not part of the same
// atomic unit: a propagation failure is logged and swallowed, never retried,
// and never fails the originating call. Each call is bounded by the
// configured timeout so a slow mirror cannot block the request.
type SyncCoordinator struct {
	mirror  repository.GraphMirror
	logger  *logrus.Logger
	timeout time.Duration
}

func NewSyncCoordinator(mirror repository.GraphMirror, logger *logrus.Logger, timeout time.Duration) *SyncCoordinator {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &SyncCoordinator{mirror: mirror, logger: logger, timeout: timeout}
}

// UserCreated mirrors a new user as a User node.
func (s *SyncCoordinator) UserCreated(ctx context.Context, u *entity.User) {
	s.run(ctx, "user", u.ID, func(ctx context.Context) error {
		return s.mirror.MergeUser(ctx, u.ID, u.Username, u.Email)
	})
}

// TodoCreated mirrors a new todo as a Todo node plus the OWNS edge, and the
// BELONGS_TO edge when the todo carries a category.
func (s *SyncCoordinator) TodoCreated(ctx context.Context, t *entity.Todo) {
	s.run(ctx, "todo", t.ID, func(ctx context.Context) error {
		if err := s.mirror.MergeTodo(ctx, t.ID, t.Title, t.UserID); err != nil {
			return err
		}
		if t.CategoryID != nil {
			return s.mirror.LinkTodoCategory(ctx, t.ID, *t.CategoryID)
		}
		return nil
	})
}

// TodoUpdated refreshes the mirrored Todo node only. Edge changes are
// propagated separately via TodoLinked so an unchanged category is not
// re-linked.
func (s *SyncCoordinator) TodoUpdated(ctx context.Context, t *entity.Todo) {
	s.run(ctx, "todo", t.ID, func(ctx context.Context) error {
		return s.mirror.MergeTodo(ctx, t.ID, t.Title, t.UserID)
	})
}

// TodoLinked mirrors a newly established todo-to-category link.
func (s *SyncCoordinator) TodoLinked(ctx context.Context, todoID, categoryID int64) {
	s.run(ctx, "todo", todoID, func(ctx context.Context) error {
		return s.mirror.LinkTodoCategory(ctx, todoID, categoryID)
	})
}

// CategoryCreated mirrors a new category as a Category node plus the CREATED edge.
func (s *SyncCoordinator) CategoryCreated(ctx context.Context, c *entity.Category) {
	s.run(ctx, "category", c.ID, func(ctx context.Context) error {
		return s.mirror.MergeCategory(ctx, c.ID, c.Name, c.UserID)
	})
}

func (s *SyncCoordinator) run(ctx context.Context, kind string, id int64, fn func(ctx context.Context) error) {
	if s == nil || s.mirror == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := fn(ctx); err != nil && s.logger != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"entity": kind,
			"id":     id,
		}).Warn("graph propagation failed")
	}
}
