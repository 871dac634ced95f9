package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkyamd/todo-graph-api/internal/application"
	"github.com/rizkyamd/todo-graph-api/internal/interface/middleware"
	"github.com/rizkyamd/todo-graph-api/pkg/response"
)

type RecommendationHandler struct {
	Svc    *application.RecommendationService
	Logger *logrus.Logger
}

func NewRecommendationHandler(svc *application.RecommendationService, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{Svc: svc, Logger: logger}
}

// Get GET /recommendations — suggestions come from the graph mirror only and
// may lag the relational store by an in-flight propagation.
func (h *RecommendationHandler) Get(c *gin.Context) {
	recs, err := h.Svc.Recommend(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch recommendations", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recommendations": recs}, "recommendations", nil)
}
