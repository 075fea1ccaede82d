package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/berkcan/schedbuilder/internal/app/controllers"
	"github.com/berkcan/schedbuilder/internal/app/models/dto"
	"github.com/berkcan/schedbuilder/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	scheduleController *controllers.ScheduleController,
	catalogueController *controllers.CatalogueController,
	authController *controllers.AuthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalogue routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", catalogueController.GetAllCourses)
		courses.GET("/:code", catalogueController.GetCourseByCode)
	}

	v1.GET("/catalogue/status", catalogueController.GetStatus)

	// --- Schedule solving ---
	schedules := v1.Group("/schedules")
	{
		schedules.POST("/solve", scheduleController.Solve)
	}

	// --- Auth ---
	auth := v1.Group("/auth")
	{
		auth.POST("/token", authController.Token)
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.AdminRequired())
	{
		admin.POST("/catalogue/refresh", catalogueController.RefreshCatalogue)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
