package routes

import (
	"eduhub/middleware"
	"eduhub/models"
	"eduhub/services"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the full API surface. Content routes are
// generated from the category registry: every category gets the same
// generic folder/file route set under /api/<slug>.
func SetupRoutes(r *gin.Engine, registry *models.CategoryRegistry, uploadService *services.UploadService) {
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.LoggingMiddleware())

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware())
	{
		authService := services.NewAuthService()

		AuthRoutes(api, authService)
		CategoryRoutes(api, registry, authService)
		MediaRoutes(api, authService, uploadService)
	}
}
