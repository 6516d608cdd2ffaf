package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ishaansolanki9/StudyFlow/internal/dto"
	"github.com/ishaansolanki9/StudyFlow/internal/service"
	"github.com/ishaansolanki9/StudyFlow/pkg/response"
)

// AssignmentGroupHandler serves the assignment-group endpoints.
type AssignmentGroupHandler struct {
	groupSvc service.AssignmentGroupService
}

// NewAssignmentGroupHandler creates an AssignmentGroupHandler.
func NewAssignmentGroupHandler(groupSvc service.AssignmentGroupService) *AssignmentGroupHandler {
	return &AssignmentGroupHandler{groupSvc: groupSvc}
}

// ListGroups lists all assignment groups.
// GET /api/assignment-groups
func (h *AssignmentGroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, groups)
}

// CreateGroup creates an assignment group.
// POST /api/assignment-groups
func (h *AssignmentGroupHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateAssignmentGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	group, err := h.groupSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, group)
}

// UpdateGroup partially updates an assignment group.
// PUT /api/assignment-groups/:id
func (h *AssignmentGroupHandler) UpdateGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateAssignmentGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	group, err := h.groupSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}

	response.OK(c, group)
}

// DeleteGroup deletes an assignment group and the assignments referencing
// it.
// DELETE /api/assignment-groups/:id
func (h *AssignmentGroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.groupSvc.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c)
		return
	}

	response.Deleted(c)
}

func (h *AssignmentGroupHandler) handleGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssignmentGroupNotFound):
		response.NotFound(c, "assignment group not found")
	default:
		response.InternalError(c)
	}
}
