package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/rizkyamd/todo-graph-api/internal/domain/repository"
)

// Recommendations traverses the mirror for todo titles from other users that
// share a category with the given user. Results are capped at 5 in
// engine-native order; a user with no categorized todos gets an empty slice.
func (m *Mirror) Recommendations(ctx context.Context, userID int64) ([]repository.Recommendation, error) {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (u:User {id: $userID})-[:OWNS]->(t:Todo)-[:BELONGS_TO]->(c:Category)
		MATCH (c)<-[:BELONGS_TO]-(other_todo:Todo)<-[:OWNS]-(other_user:User)
		WHERE other_user.id <> $userID
		RETURN other_todo.title AS recommendation, c.name AS category
		LIMIT 5
	`

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userID": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run recommendation query: %w", err)
	}

	recs := make([]repository.Recommendation, 0, 5)
	for result.Next(ctx) {
		record := result.Record()
		recs = append(recs, repository.Recommendation{
			Title:    getStringFromRecord(record, "recommendation"),
			Category: getStringFromRecord(record, "category"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recommendation records: %w", err)
	}
	return recs, nil
}

func getStringFromRecord(record *neo4j.Record, key string) string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}
