package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/service"
	"github.com/ishaansolanki9/StudyFlow/pkg/response"
)

// YearHandler serves the academic-year endpoints.
type YearHandler struct {
	yearSvc service.YearService
}

// NewYearHandler creates a YearHandler.
func NewYearHandler(yearSvc service.YearService) *YearHandler {
	return &YearHandler{yearSvc: yearSvc}
}

// ListYears lists all years.
// GET /api/years
func (h *YearHandler) ListYears(c *gin.Context) {
	years, err := h.yearSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, years)
}

// CreateYear creates a year.
// POST /api/years
func (h *YearHandler) CreateYear(c *gin.Context) {
	var req dto.CreateYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	year, err := h.yearSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, year)
}

// DeleteYear deletes a year, cascading to its courses, groups and
// assignments.
// DELETE /api/years/:id
func (h *YearHandler) DeleteYear(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.yearSvc.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c)
		return
	}

	response.Deleted(c)
}
