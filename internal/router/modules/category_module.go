package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkyamd/todo-graph-api/internal/container"
	handlers "github.com/rizkyamd/todo-graph-api/internal/interface/http"
	"github.com/rizkyamd/todo-graph-api/internal/interface/middleware"
)

// CategoryModule wires the authenticated category surface.
type CategoryModule struct {
	Handler *handlers.CategoryHandler
	Auth    gin.HandlerFunc
}

func NewCategoryModule(h *handlers.CategoryHandler, auth gin.HandlerFunc) *CategoryModule {
	return &CategoryModule{Handler: h, Auth: auth}
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/categories")
	auth.Use(m.Auth)
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
	}
}
