package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkyamd/todo-graph-api/internal/container"
	handlers "github.com/rizkyamd/todo-graph-api/internal/interface/http"
	"github.com/rizkyamd/todo-graph-api/internal/interface/middleware"
)

// RecommendationModule wires the graph-backed recommendation read path.
type RecommendationModule struct {
	Handler *handlers.RecommendationHandler
	Auth    gin.HandlerFunc
}

func NewRecommendationModule(h *handlers.RecommendationHandler, auth gin.HandlerFunc) *RecommendationModule {
	return &RecommendationModule{Handler: h, Auth: auth}
}

func (m *RecommendationModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/recommendations")
	auth.Use(m.Auth)
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("", m.Handler.Get)
	}
}
