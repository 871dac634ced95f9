// Package graph implements the derived Neo4j mirror of the relational store.
// Every write is a MERGE keyed by the relational id, so repeated propagation
// of the same fact is a no-op. The mirror is never authoritative: relational
// deletes are not propagated, so stale nodes and edges can remain until an
// out-of-band reconciliation. Clearing a todo's category is such a delete;
// the old BELONGS_TO edge only goes away when the todo is linked to another
// category.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sirupsen/logrus"

	"github.com/rizkyamd/todo-graph-api/internal/domain/repository"
)

// Mirror handles all Neo4j operations for the derived store.
type Mirror struct {
	driver neo4j.DriverWithContext
	logger *logrus.Logger
}

// NewDriver constructs a Neo4j driver and verifies connectivity.
func NewDriver(ctx context.Context, uri, user, password string) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("failed to verify neo4j connectivity: %w", err)
	}
	return driver, nil
}

// NewMirror creates a graph mirror over an existing driver.
func NewMirror(driver neo4j.DriverWithContext, logger *logrus.Logger) *Mirror {
	return &Mirror{driver: driver, logger: logger}
}

// Close closes the Neo4j driver connection.
func (m *Mirror) Close(ctx context.Context) error {
	return m.driver.Close(ctx)
}

// MergeUser upserts a User node keyed by the relational id.
func (m *Mirror) MergeUser(ctx context.Context, userID int64, username, email string) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MERGE (u:User {id: $userID})
		SET u.username = $username, u.email = $email
	`

	_, err := session.Run(ctx, query, map[string]interface{}{
		"userID":   userID,
		"username": username,
		"email":    email,
	})
	if err != nil {
		return fmt.Errorf("failed to merge user node: %w", err)
	}
	return nil
}

// MergeTodo upserts a Todo node and the OWNS edge from its owner. When the
// owning User node has not been merged yet the MATCH finds nothing and the
// edge is silently skipped; a later merge of the same todo repairs it.
func (m *Mirror) MergeTodo(ctx context.Context, todoID int64, title string, userID int64) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MERGE (t:Todo {id: $todoID})
		SET t.title = $title
		WITH t
		MATCH (u:User {id: $userID})
		MERGE (u)-[:OWNS]->(t)
	`

	_, err := session.Run(ctx, query, map[string]interface{}{
		"todoID": todoID,
		"title":  title,
		"userID": userID,
	})
	if err != nil {
		return fmt.Errorf("failed to merge todo node: %w", err)
	}
	return nil
}

// MergeCategory upserts a Category node and the CREATED edge from its owner.
func (m *Mirror) MergeCategory(ctx context.Context, categoryID int64, name string, userID int64) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MERGE (c:Category {id: $categoryID})
		SET c.name = $name
		WITH c
		MATCH (u:User {id: $userID})
		MERGE (u)-[:CREATED]->(c)
	`

	_, err := session.Run(ctx, query, map[string]interface{}{
		"categoryID": categoryID,
		"name":       name,
		"userID":     userID,
	})
	if err != nil {
		return fmt.Errorf("failed to merge category node: %w", err)
	}
	return nil
}

// LinkTodoCategory merges the BELONGS_TO edge between existing nodes,
// deleting any edge to another category first: the relational category
// column is single-valued, so a todo is never in two categories. No match
// means no edge; creation is not verified.
func (m *Mirror) LinkTodoCategory(ctx context.Context, todoID, categoryID int64) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MATCH (t:Todo {id: $todoID})
		OPTIONAL MATCH (t)-[old:BELONGS_TO]->(prev:Category)
		WHERE prev.id <> $categoryID
		DELETE old
		WITH DISTINCT t
		MATCH (c:Category {id: $categoryID})
		MERGE (t)-[:BELONGS_TO]->(c)
	`

	_, err := session.Run(ctx, query, map[string]interface{}{
		"todoID":     todoID,
		"categoryID": categoryID,
	})
	if err != nil {
		return fmt.Errorf("failed to link todo to category: %w", err)
	}
	return nil
}

var _ repository.GraphMirror = (*Mirror)(nil)
