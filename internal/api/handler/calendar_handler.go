package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/service"
	"github.com/ishaansolanki9/StudyFlow/pkg/response"
)

// CalendarHandler serves the iCalendar feed.
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// AssignmentsFeed renders in-scope assignment deadlines as iCalendar.
// GET /api/calendar/assignments.ics?year=1&semester=Fall
func (h *CalendarHandler) AssignmentsFeed(c *gin.Context) {
	var q dto.ScopeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	feed, err := h.calendarSvc.AssignmentsFeed(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="assignments.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
