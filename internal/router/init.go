package router

import (
	"github.com/rizkyamd/todo-graph-api/internal/application"
	"github.com/rizkyamd/todo-graph-api/internal/container"
	pginfra "github.com/rizkyamd/todo-graph-api/internal/infrastructure/postgres"
	handlers "github.com/rizkyamd/todo-graph-api/internal/interface/http"
	"github.com/rizkyamd/todo-graph-api/internal/interface/middleware"
	"github.com/rizkyamd/todo-graph-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	sync := application.NewSyncCoordinator(container.GetMirror(), logger, cfg.GraphSyncTimeout)

	userSvc := application.NewUserService(pginfra.NewUserRepository(pool), container.GetJWT(), sync, logger)
	todoSvc := application.NewTodoService(pginfra.NewTodoRepository(pool), sync, logger)
	categorySvc := application.NewCategoryService(pginfra.NewCategoryRepository(pool), sync, logger)
	recSvc := application.NewRecommendationService(container.GetMirror(), logger)

	auth := middleware.BearerAuth(container.GetJWT(), userSvc)

	r.Add(modules.NewAuthModule(handlers.NewUserHandler(userSvc, logger), auth))
	r.Add(modules.NewTodoModule(handlers.NewTodoHandler(todoSvc, logger), auth))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(categorySvc, logger), auth))
	r.Add(modules.NewRecommendationModule(handlers.NewRecommendationHandler(recSvc, logger), auth))
}
