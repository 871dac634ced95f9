package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkyamd/todo-graph-api/internal/application"
	"github.com/rizkyamd/todo-graph-api/internal/interface/middleware"
	"github.com/rizkyamd/todo-graph-api/pkg/response"
	"github.com/rizkyamd/todo-graph-api/pkg/validation"
)

type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type createCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,hexclr"`
}

// Create POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	cat, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), req.Name, req.Color)
	if err != nil {
		h.Logger.WithError(err).Error("failed to create category")
		response.Error[any](c, http.StatusInternalServerError, "failed to create category", nil)
		return
	}
	response.Success(c, http.StatusOK, cat, "category created", nil)
}

// Get GET /categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid category id", nil)
		return
	}

	cat, err := h.Svc.Get(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "Category not found", nil)
			return
		}
		h.Logger.WithError(err).Error("failed to get category")
		response.Error[any](c, http.StatusInternalServerError, "failed to get category", nil)
		return
	}
	response.Success(c, http.StatusOK, cat, "category", nil)
}

// List GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Svc.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.Logger.WithError(err).Error("failed to list categories")
		response.Error[any](c, http.StatusInternalServerError, "failed to list categories", nil)
		return
	}
	response.Success(c, http.StatusOK, cats, "categories", nil)
}
