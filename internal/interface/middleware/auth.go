package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rizkyamd/todo-graph-api/internal/domain/entity"
	"github.com/rizkyamd/todo-graph-api/pkg/helpers"
	"github.com/rizkyamd/todo-graph-api/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// UserResolver resolves a token subject (username) to the stored user.
// Implemented by application.UserService.
type UserResolver interface {
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// BearerAuth validates the Authorization: Bearer token, resolves its subject
// to an active user, and injects the user id and username into the context.
// Any failure is a 401 with a WWW-Authenticate challenge.
func BearerAuth(jwt *helpers.JWTManager, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c, "missing bearer token")
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			if errors.Is(err, helpers.ErrTokenExpired) {
				unauthorized(c, "token expired")
				return
			}
			unauthorized(c, "invalid token")
			return
		}
		u, err := users.GetByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			unauthorized(c, "could not validate credentials")
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUsernameKey, u.Username)
		c.Next()
	}
}

// UserID returns the authenticated user's id from the Gin context.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserIDKey)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	response.AbortError(c, http.StatusUnauthorized, msg, nil)
}
