package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/service"
	"github.com/ishaansolanki9/StudyFlow/pkg/response"
)

// DashboardHandler serves the derived dashboard endpoints.
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// GetDashboard returns the extended dashboard, optionally scoped by year
// and semester.
// GET /api/dashboard?year=1&semester=Fall
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var q dto.ScopeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	dashboard, err := h.dashboardSvc.Overview(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dashboard)
}

// GetSummary returns the quick totals for the same scope.
// GET /api/dashboard/summary?year=1&semester=Fall
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	var q dto.ScopeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	summary, err := h.dashboardSvc.Summary(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}
