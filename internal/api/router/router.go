package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ishaansolanki9/StudyFlow/config"
	"github.com/ishaansolanki9/StudyFlow/internal/api/handler"
	"github.com/ishaansolanki9/StudyFlow/internal/api/middleware"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	// Reject unknown body fields instead of silently dropping them; a
	// typo in an update request must not become a lost field.
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		years := api.Group("/years")
		{
			years.GET("", h.Year.ListYears)
			years.POST("", h.Year.CreateYear)
			years.DELETE("/:id", h.Year.DeleteYear)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", h.Course.ListCourses)
			courses.POST("", h.Course.CreateCourse)
			courses.PUT("/:id", h.Course.UpdateCourse)
			courses.DELETE("/:id", h.Course.DeleteCourse)
		}

		groups := api.Group("/assignment-groups")
		{
			groups.GET("", h.Group.ListGroups)
			groups.POST("", h.Group.CreateGroup)
			groups.PUT("/:id", h.Group.UpdateGroup)
			groups.DELETE("/:id", h.Group.DeleteGroup)
		}

		assignments := api.Group("/assignments")
		{
			assignments.GET("", h.Assignment.ListAssignments)
			assignments.POST("", h.Assignment.CreateAssignment)
			assignments.PUT("/:id", h.Assignment.UpdateAssignment)
			assignments.DELETE("/:id", h.Assignment.DeleteAssignment)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("", h.Dashboard.GetDashboard)
			dashboard.GET("/summary", h.Dashboard.GetSummary)
		}

		api.GET("/export/assignments", h.Export.ExportAssignments)
		api.GET("/calendar/assignments.ics", h.Calendar.AssignmentsFeed)
	}

	return r
}
