package routes

import (
	"eduhub/controllers"
	"eduhub/middleware"
	"eduhub/services"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.RouterGroup, authService *services.AuthService) {
	authController := controllers.NewAuthController()

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", middleware.AuthMiddleware(authService), authController.Me)
		auth.PUT("/users/:id/role",
			middleware.AuthMiddleware(authService),
			middleware.RequireAdmin(),
			authController.SetRole,
		)
	}
}
