package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ishaansolanki9/StudyFlow/pkg/response"
)

// pathID extracts the :id route parameter as a positive integer. On
// failure it writes a 400 response and returns false; the caller should
// return immediately.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
