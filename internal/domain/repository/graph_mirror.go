package repository

import "context"

// Recommendation is one suggested todo title from another user sharing a
// category with the requesting user.
type Recommendation struct {
	Title    string `json:"recommendation"`
	Category string `json:"category"`
}

// GraphMirror is the port to the derived graph store. Nodes and edges are
// keyed by the relational ids; every write is an idempotent merge, so
// repeated delivery of the same fact is a no-op. The mirror is never
// authoritative for existence or field values.
type GraphMirror interface {
	MergeUser(ctx context.Context, userID int64, username, email string) error
	MergeTodo(ctx context.Context, todoID int64, title string, userID int64) error
	MergeCategory(ctx context.Context, categoryID int64, name string, userID int64) error
	LinkTodoCategory(ctx context.Context, todoID, categoryID int64) error
	Recommendations(ctx context.Context, userID int64) ([]Recommendation, error)
	Close(ctx context.Context) error
}
