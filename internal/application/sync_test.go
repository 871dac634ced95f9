package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
	repo "github.com/rizkyamd/todo-graph-api/internal/domain/repository"
)

// deadlineMirror captures the deadline of the context it was called with.
type deadlineMirror struct {
	fakeMirror
	deadline time.Time
	ok       bool
}

func (d *deadlineMirror) MergeUser(ctx context.Context, userID int64, username, email string) error {
	d.deadline, d.ok = ctx.Deadline()
	return d.fakeMirror.MergeUser(ctx, userID, username, email)
}

func TestSyncCoordinator_BoundsPropagationByTimeout(t *testing.T) {
	mirror := &deadlineMirror{}
	sync := NewSyncCoordinator(mirror, nil, 2*time.Second)

	sync.UserCreated(context.Background(), &entity.User{ID: 1, Username: "alice"})

	require.True(t, mirror.ok, "propagation context should carry a deadline")
	assert.WithinDuration(t, time.Now().Add(2*time.Second), mirror.deadline, 500*time.Millisecond)
}

func TestSyncCoordinator_NilMirrorIsNoop(t *testing.T) {
	var nilMirror repo.GraphMirror
	sync := NewSyncCoordinator(nilMirror, nil, time.Second)

	// Must not panic.
	sync.UserCreated(context.Background(), &entity.User{ID: 1})
	sync.TodoCreated(context.Background(), &entity.Todo{ID: 1})
	sync.CategoryCreated(context.Background(), &entity.Category{ID: 1})
	sync.TodoLinked(context.Background(), 1, 2)
}

func TestSyncCoordinator_TodoWithoutCategorySkipsLink(t *testing.T) {
	mirror := &fakeMirror{}
	sync := NewSyncCoordinator(mirror, nil, time.Second)

	sync.TodoCreated(context.Background(), &entity.Todo{ID: 5, Title: "solo", UserID: 1})

	assert.Len(t, mirror.nodesOf("todo"), 1)
	assert.Empty(t, mirror.edges)
}
