package routes

import (
	"eduhub/controllers"
	"eduhub/middleware"
	"eduhub/services"

	"github.com/gin-gonic/gin"
)

func MediaRoutes(r *gin.RouterGroup, authService *services.AuthService, uploadService *services.UploadService) {
	mediaController := controllers.NewMediaController(uploadService)

	media := r.Group("/media")
	media.Use(middleware.AuthMiddleware(authService), middleware.RequireContentManager())
	{
		media.POST("/upload", mediaController.Upload)
	}
}
