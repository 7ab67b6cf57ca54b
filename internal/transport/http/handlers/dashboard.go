package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/usecase"
)

// DashboardHandler exposes the admin dashboard aggregate.
type DashboardHandler struct {
	dashboard *usecase.DashboardService
	log       *zap.Logger
}

func NewDashboardHandler(dashboard *usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardHandler{dashboard: dashboard, log: log}
}

// RegisterRoutes binds the dashboard endpoint.
func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.Summary)
}

// Summary returns counts, recent records, and the static tiles.
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		h.log.Error("aggregate dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, newError("Failed to fetch dashboard data"))
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Success: true, Data: *summary})
}
