package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkyamd/todo-graph-api/internal/application"
	"github.com/rizkyamd/todo-graph-api/internal/interface/middleware"
	"github.com/rizkyamd/todo-graph-api/pkg/response"
	"github.com/rizkyamd/todo-graph-api/pkg/validation"
)

type TodoHandler struct {
	Svc    *application.TodoService
	Logger *logrus.Logger
}

func NewTodoHandler(svc *application.TodoService, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{Svc: svc, Logger: logger}
}

type createTodoRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,priority"`
	DueDate     *time.Time `json:"due_date"`
	CategoryID  *int64     `json:"category_id"`
}

// updateTodoRequest is a partial update: only fields present in the payload
// are applied, and a field sent as an explicit null clears the column.
type updateTodoRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority" binding:"omitempty,priority"`
	DueDate     *time.Time `json:"due_date"`
	CategoryID  *int64     `json:"category_id"`

	present map[string]json.RawMessage
}

// UnmarshalJSON records which keys were present so an explicit null can be
// told apart from an absent field.
func (r *updateTodoRequest) UnmarshalJSON(data []byte) error {
	type plain updateTodoRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = updateTodoRequest(p)
	return json.Unmarshal(data, &r.present)
}

func (r *updateTodoRequest) has(key string) bool {
	_, ok := r.present[key]
	return ok
}

// Create POST /todos
func (h *TodoHandler) Create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), application.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		h.fail(c, err, "failed to create todo")
		return
	}
	response.Success(c, http.StatusOK, t, "todo created", nil)
}

// List GET /todos?skip=&limit=
func (h *TodoHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	todos, err := h.Svc.List(c.Request.Context(), middleware.UserID(c), skip, limit)
	if err != nil {
		h.fail(c, err, "failed to list todos")
		return
	}
	response.Success(c, http.StatusOK, todos, "todos", map[string]any{"skip": skip, "limit": limit})
}

// Get GET /todos/:id
func (h *TodoHandler) Get(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	t, err := h.Svc.Get(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.fail(c, err, "failed to get todo")
		return
	}
	response.Success(c, http.StatusOK, t, "todo", nil)
}

// Update PUT /todos/:id
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.UpdateTodoInput{
		Title:     req.Title,
		Completed: req.Completed,
		Priority:  req.Priority,
	}
	if req.has("description") {
		in.Description = application.Patch[string]{Set: true, Value: req.Description}
	}
	if req.has("due_date") {
		in.DueDate = application.Patch[time.Time]{Set: true, Value: req.DueDate}
	}
	if req.has("category_id") {
		in.CategoryID = application.Patch[int64]{Set: true, Value: req.CategoryID}
	}

	t, err := h.Svc.Update(c.Request.Context(), id, middleware.UserID(c), in)
	if err != nil {
		h.fail(c, err, "failed to update todo")
		return
	}
	response.Success(c, http.StatusOK, t, "todo updated", nil)
}

// Delete DELETE /todos/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := todoID(c)
	if !ok {
		return
	}
	if _, err := h.Svc.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		h.fail(c, err, "failed to delete todo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Todo deleted successfully"}, "todo deleted", nil)
}

func (h *TodoHandler) fail(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "Todo not found", nil)
	case errors.Is(err, application.ErrInvalidPriority):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Error[any](c, http.StatusInternalServerError, logMsg, nil)
	}
}

func todoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid todo id", nil)
		return 0, false
	}
	return id, true
}
