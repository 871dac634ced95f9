package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkyamd/todo-graph-api/internal/container"
	handlers "github.com/rizkyamd/todo-graph-api/internal/interface/http"
	"github.com/rizkyamd/todo-graph-api/internal/interface/middleware"
)

// AuthModule wires the public auth surface and the authenticated profile route.
// Public: POST /register, POST /token
// Protected: GET /users/me
type AuthModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
}

func NewAuthModule(h *handlers.UserHandler, auth gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints. Registration is limited per IP and path; token
	// attempts count against the IP as a whole.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	tokenLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/token", tokenLimiter, m.Handler.Token)

	// Protected
	auth := rg.Group("/")
	auth.Use(m.Auth)
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/users/me", m.Handler.Me)
	}
}
