package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/rizkyamd/todo-graph-api/config"
	"github.com/rizkyamd/todo-graph-api/internal/application"
	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
	"github.com/rizkyamd/todo-graph-api/internal/infrastructure/graph"
	pginfra "github.com/rizkyamd/todo-graph-api/internal/infrastructure/postgres"
	"github.com/rizkyamd/todo-graph-api/pkg/helpers"
)

// Seeds two demo users sharing a category through the application services,
// so the graph mirror is populated the same way the API populates it.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	driver, err := graph.NewDriver(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		log.Fatalf("failed to connect to neo4j: %v", err)
	}
	mirror := graph.NewMirror(driver, logger)
	defer func() { _ = mirror.Close(context.Background()) }()

	sync := application.NewSyncCoordinator(mirror, logger, cfg.GraphSyncTimeout)
	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.AccessTTL)

	users := application.NewUserService(pginfra.NewUserRepository(pool), jwtManager, sync, logger)
	todos := application.NewTodoService(pginfra.NewTodoRepository(pool), sync, logger)
	categories := application.NewCategoryService(pginfra.NewCategoryRepository(pool), sync, logger)

	alice, err := users.Register(ctx, "alice", "alice@example.com", "password123")
	if err != nil {
		log.Fatalf("failed to seed alice: %v", err)
	}
	bob, err := users.Register(ctx, "bob", "bob@example.com", "password123")
	if err != nil {
		log.Fatalf("failed to seed bob: %v", err)
	}

	work, err := categories.Create(ctx, alice.ID, "Work", "")
	if err != nil {
		log.Fatalf("failed to seed category: %v", err)
	}

	if _, err := todos.Create(ctx, alice.ID, application.CreateTodoInput{
		Title:      "Plan sprint",
		Priority:   entity.PriorityHigh,
		CategoryID: &work.ID,
	}); err != nil {
		log.Fatalf("failed to seed todo: %v", err)
	}
	if _, err := todos.Create(ctx, bob.ID, application.CreateTodoInput{
		Title:      "Write report",
		CategoryID: &work.ID,
	}); err != nil {
		log.Fatalf("failed to seed todo: %v", err)
	}

	fmt.Printf("seeded users: alice=%d bob=%d, shared category %q=%d\n", alice.ID, bob.ID, work.Name, work.ID)
}
