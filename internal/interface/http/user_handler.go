package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkyamd/todo-graph-api/internal/application"
	"github.com/rizkyamd/todo-graph-api/internal/interface/middleware"
	"github.com/rizkyamd/todo-graph-api/pkg/response"
	"github.com/rizkyamd/todo-graph-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,pwd"`
}

// tokenRequest follows the OAuth2 password flow: form-encoded credentials.
type tokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUsernameTaken), errors.Is(err, application.ErrEmailTaken):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("register failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to register", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, u, "registered", nil)
}

// Token POST /token — verifies credentials and issues a bearer token.
func (h *UserHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, exp, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			response.Error[any](c, http.StatusUnauthorized, "incorrect username or password", nil)
			return
		}
		h.Logger.WithError(err).Error("token issuance failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to issue token", nil)
		return
	}
	response.Success(c, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"}, "token issued", map[string]any{"expires_at": exp})
}

// Me GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	u, err := h.Svc.GetByUsername(c.Request.Context(), username)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "could not validate credentials", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "profile", nil)
}
