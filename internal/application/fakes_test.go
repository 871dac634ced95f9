package application

import (
	"context"
	"errors"
	"sync"

	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
	repo "github.com/rizkyamd/todo-graph-api/internal/domain/repository"
)

// In-memory fakes for the repository and mirror ports.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	u.ID = f.nextID
	u.IsActive = true
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

type fakeTodoRepo struct {
	mu     sync.Mutex
	nextID int64
	todos  map[int64]entity.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: make(map[int64]entity.Todo)}
}

func (f *fakeTodoRepo) Create(_ context.Context, t *entity.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t.ID = f.nextID
	f.todos[t.ID] = *t
	return nil
}

func (f *fakeTodoRepo) GetByID(_ context.Context, todoID, userID int64) (*entity.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.todos[todoID]; ok && t.UserID == userID {
		cp := t
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeTodoRepo) Update(_ context.Context, t *entity.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cur, ok := f.todos[t.ID]; ok && cur.UserID == t.UserID {
		f.todos[t.ID] = *t
		return nil
	}
	return repo.ErrNotFound
}

func (f *fakeTodoRepo) Delete(_ context.Context, todoID, userID int64) (*entity.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.todos[todoID]; ok && t.UserID == userID {
		delete(f.todos, todoID)
		cp := t
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeTodoRepo) ListByUser(_ context.Context, userID int64, skip, limit int) ([]entity.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Todo, 0)
	for id := int64(1); id <= f.nextID; id++ {
		if t, ok := f.todos[id]; ok && t.UserID == userID {
			out = append(out, t)
		}
	}
	if skip >= len(out) {
		return []entity.Todo{}, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeCategoryRepo struct {
	mu     sync.Mutex
	nextID int64
	cats   map[int64]entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{cats: make(map[int64]entity.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c.ID = f.nextID
	f.cats[c.ID] = *c
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, categoryID, userID int64) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.cats[categoryID]; ok && c.UserID == userID {
		cp := c
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeCategoryRepo) ListByUser(_ context.Context, userID int64) ([]entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Category, 0)
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.cats[id]; ok && c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type mergedNode struct {
	kind  string
	id    int64
	title string
	owner int64
}

type mergedEdge struct {
	todoID     int64
	categoryID int64
}

// fakeMirror records propagations and can be told to fail.
type fakeMirror struct {
	mu    sync.Mutex
	fail  bool
	nodes []mergedNode
	edges []mergedEdge
	recs  []repo.Recommendation
	err   error
}

func (f *fakeMirror) MergeUser(_ context.Context, userID int64, username, _ string) error {
	return f.record(mergedNode{kind: "user", id: userID, title: username})
}

func (f *fakeMirror) MergeTodo(_ context.Context, todoID int64, title string, userID int64) error {
	return f.record(mergedNode{kind: "todo", id: todoID, title: title, owner: userID})
}

func (f *fakeMirror) MergeCategory(_ context.Context, categoryID int64, name string, userID int64) error {
	return f.record(mergedNode{kind: "category", id: categoryID, title: name, owner: userID})
}

// LinkTodoCategory replaces any previous edge for the todo, mirroring the
// single-valued relational column.
func (f *fakeMirror) LinkTodoCategory(_ context.Context, todoID, categoryID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("mirror down")
	}
	kept := f.edges[:0]
	for _, e := range f.edges {
		if e.todoID != todoID {
			kept = append(kept, e)
		}
	}
	f.edges = append(kept, mergedEdge{todoID: todoID, categoryID: categoryID})
	return nil
}

func (f *fakeMirror) Recommendations(_ context.Context, _ int64) ([]repo.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recs, nil
}

func (f *fakeMirror) Close(_ context.Context) error { return nil }

func (f *fakeMirror) record(n mergedNode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("mirror down")
	}
	f.nodes = append(f.nodes, n)
	return nil
}

func (f *fakeMirror) nodesOf(kind string) []mergedNode {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]mergedNode, 0)
	for _, n := range f.nodes {
		if n.kind == kind {
			out = append(out, n)
		}
	}
	return out
}
