package routes

import (
	"eduhub/controllers"
	"eduhub/middleware"
	"eduhub/models"
	"eduhub/services"
	"eduhub/utils"

	"github.com/gin-gonic/gin"
)

// CategoryRoutes mounts the generic folder/file surface once per
// registered category. Reads are public, mutations require a moderator
// or admin session.
func CategoryRoutes(r *gin.RouterGroup, registry *models.CategoryRegistry, authService *services.AuthService) {
	folderController := controllers.NewFolderController()
	fileController := controllers.NewFileController()

	for _, category := range registry.All() {
		group := r.Group("/" + category.Slug)
		group.Use(bindCategory(category))

		folders := group.Group("/folders")
		{
			folders.GET("", folderController.GetFolders)
			folders.GET("/:id", folderController.GetFolder)
			folders.GET("/:id/files", folderController.GetFolderFiles)

			manage := folders.Group("")
			manage.Use(middleware.AuthMiddleware(authService), middleware.RequireContentManager())
			{
				manage.POST("", folderController.CreateFolder)
				manage.PUT("/:id", folderController.UpdateFolder)
				manage.DELETE("/:id", folderController.DeleteFolder)
			}
		}

		files := group.Group("/files")
		{
			files.GET("/:id", fileController.GetFile)

			manage := files.Group("")
			manage.Use(middleware.AuthMiddleware(authService), middleware.RequireContentManager())
			{
				manage.POST("", fileController.CreateFile)
				manage.PUT("/:id", fileController.UpdateFile)
				manage.DELETE("/:id", fileController.DeleteFile)
			}
		}
	}
}

// bindCategory stamps the category on the request context so the
// generic controllers know which namespace they serve.
func bindCategory(category models.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.SetCategoryInContext(c, category)
		c.Next()
	}
}
