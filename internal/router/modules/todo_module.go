package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkyamd/todo-graph-api/internal/container"
	handlers "github.com/rizkyamd/todo-graph-api/internal/interface/http"
	"github.com/rizkyamd/todo-graph-api/internal/interface/middleware"
)

// TodoModule wires the authenticated todo CRUD surface.
type TodoModule struct {
	Handler *handlers.TodoHandler
	Auth    gin.HandlerFunc
}

func NewTodoModule(h *handlers.TodoHandler, auth gin.HandlerFunc) *TodoModule {
	return &TodoModule{Handler: h, Auth: auth}
}

func (m *TodoModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/todos")
	auth.Use(m.Auth)
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
